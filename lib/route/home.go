// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package route

// NoticeList shows the bank notices and offers feed.
type NoticeList struct{}

func (NoticeList) RouteID() string    { return "noticeList" }
func (NoticeList) Segments() []string { return []string{"notices"} }
func (NoticeList) Tab() Tab           { return TabHome }
func (NoticeList) isRoute()           {}

// NoticeDetail shows one notice rendered in full.
type NoticeDetail struct {
	NoticeID string
}

func (r NoticeDetail) RouteID() string    { return "noticeDetail-" + r.NoticeID }
func (r NoticeDetail) Segments() []string { return []string{"notices", r.NoticeID} }
func (NoticeDetail) Tab() Tab             { return TabHome }
func (NoticeDetail) isRoute()             {}
