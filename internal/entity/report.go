package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is a frozen snapshot of one named aggregate. Rows holds a typed slice
// (e.g. []ClaimStatusRow); Columns lists its JSON field names in order.
type Report struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Group       string    `json:"group"`
	SnapshotId  uuid.UUID `json:"snapshotId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Columns     []string  `json:"columns"`
	Rows        any       `json:"rows"`
	RowCount    int       `json:"rowCount"`
	Message     string    `json:"message,omitempty"`
}

type ReportFilters struct {
	City string
}

// controller model
type ReportDescriptor struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Group   string   `json:"group"`
	Filters []string `json:"filters,omitempty"`
}
