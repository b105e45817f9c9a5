package service

import (
	"context"
	"errors"
	"food-wastage-api/internal/common"
	"food-wastage-api/internal/dataset"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo"
	"food-wastage-api/internal/repo/repo_errors"
	"time"
)

type ProviderService struct {
	providerRepo repo.Provider
	cache        *reportCache
}

func NewProviderService(repos *repo.Repositories, cache *reportCache) *ProviderService {
	return &ProviderService{providerRepo: repos.Provider, cache: cache}
}

func (s *ProviderService) CreateProvider(ctx context.Context, input *entity.CreateProviderInput) (*entity.Provider, error) {
	if input.Address == "" {
		input.Address = common.NotAvailable
	}

	id, err := s.providerRepo.CreateProvider(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate()

	provider, err := s.providerRepo.GetProviderById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProviderNotFound
		}

		return nil, err
	}

	return provider, nil
}

type ReceiverService struct {
	receiverRepo repo.Receiver
	cache        *reportCache
}

func NewReceiverService(repos *repo.Repositories, cache *reportCache) *ReceiverService {
	return &ReceiverService{receiverRepo: repos.Receiver, cache: cache}
}

func (s *ReceiverService) CreateReceiver(ctx context.Context, input *entity.CreateReceiverInput) (*entity.Receiver, error) {
	id, err := s.receiverRepo.CreateReceiver(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate()

	receiver, err := s.receiverRepo.GetReceiverById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrReceiverNotFound
		}

		return nil, err
	}

	return receiver, nil
}

type FoodListingService struct {
	foodListingRepo repo.FoodListing
	providerRepo    repo.Provider
	cache           *reportCache
}

func NewFoodListingService(repos *repo.Repositories, cache *reportCache) *FoodListingService {
	return &FoodListingService{
		foodListingRepo: repos.FoodListing,
		providerRepo:    repos.Provider,
		cache:           cache,
	}
}

// CreateFoodListing accepts unknown provider ids. An empty location falls back
// to the provider's city, or "N/A" when the provider is unknown.
func (s *FoodListingService) CreateFoodListing(ctx context.Context, input *entity.CreateFoodListingInput) (*entity.FoodListing, error) {
	input.ExpiryDate = dataset.NormalizeDate(input.ExpiryDate)

	if input.Location == "" {
		input.Location = common.NotAvailable

		provider, err := s.providerRepo.GetProviderById(ctx, input.ProviderId)
		switch {
		case err == nil:
			input.Location = provider.City
		case !errors.Is(err, repo_errors.ErrNotFound):
			return nil, err
		}
	}

	id, err := s.foodListingRepo.CreateFoodListing(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate()

	listing, err := s.foodListingRepo.GetFoodListingById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrFoodListingNotFound
		}

		return nil, err
	}

	return listing, nil
}

type ClaimService struct {
	claimRepo repo.Claim
	cache     *reportCache
	now       func() time.Time
}

func NewClaimService(repos *repo.Repositories, cache *reportCache, opts Options) *ClaimService {
	return &ClaimService{claimRepo: repos.Claim, cache: cache, now: opts.clock()}
}

// CreateClaim stamps the claim with the same clock reports use for "today", so a
// claim made now falls on the current report date. The status defaults to
// Pending and known statuses are stored with their canonical spelling.
func (s *ClaimService) CreateClaim(ctx context.Context, input *entity.CreateClaimInput) (*entity.Claim, error) {
	input.Status = common.NormalizeStatus(input.Status)
	if input.Status == "" {
		input.Status = common.Pending
	}
	input.Timestamp = s.now().Format(dataset.TimestampLayout)

	id, err := s.claimRepo.CreateClaim(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate()

	claim, err := s.claimRepo.GetClaimById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrClaimNotFound
		}

		return nil, err
	}

	return claim, nil
}
