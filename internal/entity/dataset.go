package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is one full snapshot of the four collections, replaced wholesale on load.
type Dataset struct {
	Providers    []Provider
	Receivers    []Receiver
	FoodListings []FoodListing
	Claims       []Claim
}

type DatasetCounts struct {
	Providers    int `json:"providers"`
	Receivers    int `json:"receivers"`
	FoodListings int `json:"foodListings"`
	Claims       int `json:"claims"`
}

// LoadStatus records how each source file was handled. Loading never fails as a whole.
type LoadStatus struct {
	RunId           uuid.UUID     `json:"runId"`
	StartedAt       time.Time     `json:"startedAt"`
	Messages        []string      `json:"messages"`
	Counts          DatasetCounts `json:"counts"`
	SyntheticClaims bool          `json:"syntheticClaims"`
}

// controller model
type DatasetStatus struct {
	LastLoad *LoadStatus   `json:"lastLoad"`
	Counts   DatasetCounts `json:"counts"`
}
