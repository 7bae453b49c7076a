package model

import "time"

// CountCategory names one tracked badge category.
type CountCategory string

const (
	CountApplications     CountCategory = "applications"
	CountContacts         CountCategory = "contacts"
	CountCallbackRequests CountCategory = "callbackRequests"
)

// Categories returns the tracked categories in display order.
func Categories() []CountCategory {
	return []CountCategory{CountApplications, CountContacts, CountCallbackRequests}
}

// CategoryCount is one category's badge value. Fresh is false when the most
// recent fetch for this category failed and Count still shows the previous
// (possibly zero) value.
type CategoryCount struct {
	Count int  `json:"count"`
	Fresh bool `json:"fresh"`
}

// PendingCounts is the aggregator snapshot fed to navigation badges.
// Counts are only meaningful for an authenticated, authorized session; on
// logout the whole snapshot is discarded rather than served stale.
type PendingCounts struct {
	Counts      map[CountCategory]CategoryCount `json:"counts"`
	Loading     bool                            `json:"loading"`
	LastFetched time.Time                       `json:"lastFetched"`
}

// EmptyPendingCounts returns a zero snapshot with every category present but unfetched.
func EmptyPendingCounts() PendingCounts {
	counts := make(map[CountCategory]CategoryCount, len(Categories()))
	for _, c := range Categories() {
		counts[c] = CategoryCount{}
	}
	return PendingCounts{Counts: counts}
}
