package service

import (
	"context"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo"
	"time"
)

type Diagnostics interface {
	Ping() error
}

type Provider interface {
	CreateProvider(ctx context.Context, input *entity.CreateProviderInput) (*entity.Provider, error)
}

type Receiver interface {
	CreateReceiver(ctx context.Context, input *entity.CreateReceiverInput) (*entity.Receiver, error)
}

type FoodListing interface {
	CreateFoodListing(ctx context.Context, input *entity.CreateFoodListingInput) (*entity.FoodListing, error)
}

type Claim interface {
	CreateClaim(ctx context.Context, input *entity.CreateClaimInput) (*entity.Claim, error)
}

type Dataset interface {
	Reload(ctx context.Context) (*entity.LoadStatus, error)
	Status(ctx context.Context) (*entity.DatasetStatus, error)
}

type Report interface {
	Catalog() []entity.ReportDescriptor
	RunReport(ctx context.Context, name string, filters entity.ReportFilters) (*entity.Report, error)
}

// Options carries the settings services need beyond their repositories.
type Options struct {
	DataDir          string
	SynthesizeClaims bool
	SyntheticSeed    int64
	Now              func() time.Time // wall clock when nil
}

func (o Options) clock() func() time.Time {
	if o.Now != nil {
		return o.Now
	}

	return time.Now
}

type Services struct {
	Diagnostics Diagnostics
	Provider    Provider
	Receiver    Receiver
	FoodListing FoodListing
	Claim       Claim
	Dataset     Dataset
	Report      Report
}

func NewServices(repos *repo.Repositories, opts Options) *Services {
	cache := newReportCache()

	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Provider:    NewProviderService(repos, cache),
		Receiver:    NewReceiverService(repos, cache),
		FoodListing: NewFoodListingService(repos, cache),
		Claim:       NewClaimService(repos, cache, opts),
		Dataset:     NewDatasetService(repos, cache, opts),
		Report:      NewReportService(repos, cache, opts),
	}
}
