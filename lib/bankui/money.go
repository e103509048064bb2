// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"fmt"
	"strings"
)

// formatCents renders an integer-cents amount as "1,234.56". Negative
// amounts keep their sign in front of the grouped digits.
func formatCents(amountCents int64) string {
	negative := amountCents < 0
	if negative {
		amountCents = -amountCents
	}
	whole := amountCents / 100
	cents := amountCents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d", sign, grouped.String(), cents)
}

// formatAmount renders a signed amount with its currency code, e.g.
// "USD 4,823.50" or "-EUR 54.23".
func formatAmount(amountCents int64, currency string) string {
	if amountCents < 0 {
		return "-" + currency + " " + formatCents(-amountCents)
	}
	return currency + " " + formatCents(amountCents)
}
