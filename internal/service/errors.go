package service

import "errors"

var (
	ErrUnknownReport = errors.New("unknown report")

	ErrProviderNotFound    = errors.New("provider not found")
	ErrReceiverNotFound    = errors.New("receiver not found")
	ErrFoodListingNotFound = errors.New("food listing not found")
	ErrClaimNotFound       = errors.New("claim not found")
)
