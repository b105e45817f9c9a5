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
	cityListingsLimit = 20
	cityDemandLimit   = 10
)

func (s *ReportService) providersReceiversPerCity(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.CityEcosystemRow, error) {
	rows, err := s.reportRepo.GetCityEcosystems(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].EcosystemStrength = rows[i].Providers + rows[i].Receivers
	}
	slices.SortStableFunc(rows, func(a, b entity.CityEcosystemRow) int {
		return cmp.Or(
			cmp.Compare(b.EcosystemStrength, a.EcosystemStrength),
			cmp.Compare(b.Providers, a.Providers),
			cmp.Compare(a.City, b.City),
		)
	})

	return rows, nil
}

func (s *ReportService) citiesByFoodListings(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.CityListingsRow, error) {
	rows, err := s.reportRepo.GetCityListings(ctx, asOf)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b entity.CityListingsRow) int {
		return cmp.Or(
			cmp.Compare(b.Listings, a.Listings),
			cmp.Compare(b.TotalQuantity, a.TotalQuantity),
			cmp.Compare(a.City, b.City),
		)
	})

	quantityRanks := derive.Rank(len(rows), func(i, j int) bool {
		return rows[i].TotalQuantity > rows[j].TotalQuantity
	})
	for i := range rows {
		r := &rows[i]
		r.AvgQuantity = derive.SafeRatio(r.TotalQuantity, float64(r.Listings), 2)
		r.FreshnessRate = derive.SafePercentage(float64(r.FreshItems), float64(r.Listings))
		r.ClaimSuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.ListingsRank = i + 1
		r.QuantityRank = quantityRanks[i]
		r.PerformanceScore = derive.CityPerformanceScore(r.Listings, r.TotalQuantity, r.CompletedClaims)
	}

	return limit(rows, cityListingsLimit), nil
}

func (s *ReportService) providerContacts(ctx context.Context, asOf time.Time, filters entity.ReportFilters) ([]entity.ProviderContactRow, error) {
	rows, err := s.reportRepo.GetProviderContacts(ctx, asOf, filters.City)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Status = derive.ProviderContactStatus(rows[i].FreshItems, rows[i].Listings)
	}
	slices.SortStableFunc(rows, func(a, b entity.ProviderContactRow) int {
		return cmp.Or(
			cmp.Compare(b.Listings, a.Listings),
			cmp.Compare(b.TotalQuantity, a.TotalQuantity),
			cmp.Compare(a.ProviderId, b.ProviderId),
		)
	})

	return rows, nil
}

func (s *ReportService) demandByCity(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.CityDemandRow, error) {
	rows, err := s.reportRepo.GetCityDemand(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].SuccessRate = derive.SafePercentage(float64(rows[i].CompletedClaims), float64(rows[i].Claims))
	}
	slices.SortStableFunc(rows, func(a, b entity.CityDemandRow) int {
		return cmp.Or(
			cmp.Compare(b.Claims, a.Claims),
			cmp.Compare(a.City, b.City),
		)
	})

	return limit(rows, cityDemandLimit), nil
}

func limit[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}

	return rows
}
