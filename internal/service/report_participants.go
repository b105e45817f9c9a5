package service

import (
	"cmp"
	"context"
	"food-wastage-api/internal/derive"
	"food-wastage-api/internal/entity"
	"slices"
	"time"
)

const (
	topProvidersLimit      = 25
	topReceiversLimit      = 25
	frequentProvidersLimit = 10
)

func (s *ReportService) providerTypeContributions(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.ProviderTypeRow, error) {
	rows, err := s.reportRepo.GetProviderTypeContributions(ctx, asOf)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b entity.ProviderTypeRow) int {
		return cmp.Or(
			cmp.Compare(b.TotalQuantity, a.TotalQuantity),
			cmp.Compare(a.ProviderType, b.ProviderType),
		)
	})
	for i := range rows {
		r := &rows[i]
		r.AvgQuantity = derive.SafeRatio(r.TotalQuantity, float64(r.Listings), 2)
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.AvgPerProvider = derive.SafeRatio(r.TotalQuantity, float64(r.Providers), 2)
		r.ContributionRank = i + 1
	}

	return rows, nil
}

func (s *ReportService) topSuccessfulProviders(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.TopProviderRow, error) {
	rows, err := s.reportRepo.GetTopProviders(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.ClaimsPerListing = derive.SafeRatio(float64(r.Claims), float64(r.Listings), 2)
		r.DistributedPerListing = derive.SafeRatio(r.DistributedQuantity, float64(r.Listings), 2)
		r.AvgDaysBeforeExpiry = derive.RoundPtr(r.AvgDaysBeforeExpiry, 1)
		r.Recognition = derive.Badge(float64(r.CompletedClaims), r.SuccessRate, derive.ProviderRecognition)
	}
	slices.SortStableFunc(rows, func(a, b entity.TopProviderRow) int {
		return cmp.Or(
			cmp.Compare(b.CompletedClaims, a.CompletedClaims),
			cmp.Compare(b.DistributedQuantity, a.DistributedQuantity),
			cmp.Compare(a.ProviderId, b.ProviderId),
		)
	})

	return limit(rows, topProvidersLimit), nil
}

func (s *ReportService) donationsPerProvider(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.ProviderDonationRow, error) {
	rows, err := s.reportRepo.GetProviderDonations(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.AvgQuantity = derive.SafeRatio(r.DonatedQuantity, float64(r.Listings), 2)
		r.DistributionRate = derive.SafePercentage(r.DistributedQuantity, r.DonatedQuantity)
		r.WastageRate = derive.SafePercentage(r.WastedQuantity, r.DonatedQuantity)
		r.AvgDaysToExpiry = derive.RoundPtr(r.AvgDaysToExpiry, 1)
		r.ImpactScore = derive.ProviderImpactScore(r.DistributedQuantity, r.ReceiversServed, r.FoodTypes)
		r.Recognition = derive.Badge(r.DistributedQuantity, r.DistributionRate, derive.DonorRecognition)
	}
	slices.SortStableFunc(rows, func(a, b entity.ProviderDonationRow) int {
		return cmp.Or(
			cmp.Compare(b.DonatedQuantity, a.DonatedQuantity),
			cmp.Compare(b.DistributedQuantity, a.DistributedQuantity),
			cmp.Compare(a.ProviderId, b.ProviderId),
		)
	})

	return rows, nil
}

func (s *ReportService) providerReliability(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.ProviderReliabilityRow, error) {
	rows, err := s.reportRepo.GetProviderReliability(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].ReliabilityRate = derive.SafePercentage(float64(rows[i].CompletedClaims), float64(rows[i].TotalClaims))
	}
	slices.SortStableFunc(rows, func(a, b entity.ProviderReliabilityRow) int {
		return cmp.Or(
			derive.CompareNullsLast(a.ReliabilityRate, b.ReliabilityRate, true),
			cmp.Compare(b.TotalClaims, a.TotalClaims),
			cmp.Compare(a.ProviderId, b.ProviderId),
		)
	})

	return rows, nil
}

func (s *ReportService) frequentProviders(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.FrequentProviderRow, error) {
	rows, err := s.reportRepo.GetFrequentProviders(ctx, asOf)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b entity.FrequentProviderRow) int {
		return cmp.Or(
			cmp.Compare(b.Listings, a.Listings),
			cmp.Compare(b.TotalQuantity, a.TotalQuantity),
			cmp.Compare(a.ProviderId, b.ProviderId),
		)
	})

	return limit(rows, frequentProvidersLimit), nil
}

func (s *ReportService) topClaimingReceivers(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.TopReceiverRow, error) {
	rows, err := s.reportRepo.GetTopReceivers(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.AvgPerSuccess = derive.SafeRatio(r.FoodReceived, float64(r.CompletedClaims), 2)
		r.Rating = derive.Badge(float64(r.CompletedClaims), r.SuccessRate, derive.ReceiverRating)
	}
	slices.SortStableFunc(rows, func(a, b entity.TopReceiverRow) int {
		return cmp.Or(
			cmp.Compare(b.FoodReceived, a.FoodReceived),
			cmp.Compare(b.Claims, a.Claims),
			cmp.Compare(a.ReceiverId, b.ReceiverId),
		)
	})

	return limit(rows, topReceiversLimit), nil
}

func (s *ReportService) receiverAverageQuantity(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.ReceiverAverageRow, error) {
	rows, err := s.reportRepo.GetReceiverAverages(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.AvgPerSuccess = derive.SafeRatio(r.FoodReceived, float64(r.CompletedClaims), 2)
		r.AvgPerClaim = derive.SafeRatio(r.QuantityClaimed, float64(r.Claims), 2)
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.Category = derive.Badge(r.FoodReceived, nil, derive.ReceiverCategory)
	}
	slices.SortStableFunc(rows, func(a, b entity.ReceiverAverageRow) int {
		return cmp.Or(
			cmp.Compare(b.FoodReceived, a.FoodReceived),
			derive.CompareNullsLast(a.AvgPerSuccess, b.AvgPerSuccess, true),
			cmp.Compare(a.ReceiverId, b.ReceiverId),
		)
	})

	return rows, nil
}

func (s *ReportService) receiverDirectory(ctx context.Context, asOf time.Time, filters entity.ReportFilters) ([]entity.ReceiverDirectoryRow, error) {
	rows, err := s.reportRepo.GetReceiverDirectory(ctx, asOf, filters.City)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b entity.ReceiverDirectoryRow) int {
		return cmp.Compare(a.ReceiverId, b.ReceiverId)
	})

	return rows, nil
}
