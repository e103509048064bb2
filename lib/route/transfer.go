// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

// NewTransfer opens the transfer form, optionally pre-filled with a
// beneficiary. An empty BeneficiaryID means a blank form.
type NewTransfer struct {
	BeneficiaryID string
}

func (r NewTransfer) RouteID() string {
	if r.BeneficiaryID == "" {
		return "newTransfer"
	}
	return "newTransfer-" + r.BeneficiaryID
}

func (r NewTransfer) Segments() []string {
	if r.BeneficiaryID == "" {
		return []string{"new"}
	}
	return []string{"new", r.BeneficiaryID}
}
func (NewTransfer) Tab() Tab { return TabTransfer }
func (NewTransfer) isRoute() {}

// TransferConfirmation shows the receipt of a completed transfer.
// Deep links carry the transfer ID only; the screen loads the receipt
// from the transfer service.
type TransferConfirmation struct {
	TransferID string
}

func (r TransferConfirmation) RouteID() string { return "transferConfirmation-" + r.TransferID }
func (r TransferConfirmation) Segments() []string {
	return []string{"confirmation", r.TransferID}
}
func (TransferConfirmation) Tab() Tab { return TabTransfer }
func (TransferConfirmation) isRoute() {}

// BeneficiaryList shows the saved transfer recipients.
type BeneficiaryList struct{}

func (BeneficiaryList) RouteID() string    { return "beneficiaryList" }
func (BeneficiaryList) Segments() []string { return []string{"beneficiaries"} }
func (BeneficiaryList) Tab() Tab           { return TabTransfer }
func (BeneficiaryList) isRoute()           {}

// AddBeneficiary opens the new-recipient form.
type AddBeneficiary struct{}

func (AddBeneficiary) RouteID() string    { return "addBeneficiary" }
func (AddBeneficiary) Segments() []string { return []string{"beneficiaries", "add"} }
func (AddBeneficiary) Tab() Tab           { return TabTransfer }
func (AddBeneficiary) isRoute()           {}
