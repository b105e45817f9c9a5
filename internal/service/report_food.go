package service

import (
	"cmp"
	"context"
	"food-wastage-api/internal/derive"
	"food-wastage-api/internal/entity"
	"slices"
	"time"
)

const expiringWindowDays = 3

func addToBuckets(b *entity.UrgencyBuckets, u derive.Urgency, quantity float64) {
	switch u {
	case derive.Critical:
		b.CriticalItems++
		b.CriticalQuantity += quantity
	case derive.Urgent:
		b.UrgentItems++
		b.UrgentQuantity += quantity
	case derive.Soon:
		b.SoonItems++
		b.SoonQuantity += quantity
	default:
		b.NormalItems++
		b.NormalQuantity += quantity
	}
}

// urgencyBuckets counts listings that have not expired yet, overall and per food type.
func (s *ReportService) urgencyBuckets(ctx context.Context, asOf time.Time) (entity.UrgencyBuckets, map[string]*entity.UrgencyBuckets, error) {
	var total entity.UrgencyBuckets
	byType := make(map[string]*entity.UrgencyBuckets)

	expiries, err := s.foodListingRepo.GetListingExpiries(ctx)
	if err != nil {
		return total, nil, err
	}

	for _, e := range expiries {
		days, ok := derive.DaysUntilDate(e.ExpiryDate, asOf)
		if !ok || days < 0 {
			continue
		}
		u := derive.ClassifyDays(days)
		addToBuckets(&total, u, e.Quantity)

		b, ok := byType[e.FoodType]
		if !ok {
			b = &entity.UrgencyBuckets{}
			byType[e.FoodType] = b
		}
		addToBuckets(b, u, e.Quantity)
	}

	return total, byType, nil
}

func (s *ReportService) foodAvailability(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.FoodAvailabilityRow, error) {
	a, err := s.reportRepo.GetFoodAvailability(ctx, asOf)
	if err != nil {
		return nil, err
	}

	buckets, _, err := s.urgencyBuckets(ctx, asOf)
	if err != nil {
		return nil, err
	}

	a.UrgencyBuckets = buckets
	a.AvgQuantity = derive.SafeRatio(a.TotalQuantity, float64(a.TotalItems), 2)
	a.DistributionRate = derive.SafePercentage(a.DistributedQuantity, a.TotalQuantity)
	a.AvgPerProvider = derive.SafeRatio(a.TotalQuantity, float64(a.Providers), 2)
	a.AvgPerCity = derive.SafeRatio(a.TotalQuantity, float64(a.Cities), 2)

	return []entity.FoodAvailabilityRow{*a}, nil
}

func (s *ReportService) commonFoodTypes(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.FoodTypeRow, error) {
	rows, err := s.reportRepo.GetFoodTypes(ctx, asOf)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b entity.FoodTypeRow) int {
		return cmp.Or(
			cmp.Compare(b.Items, a.Items),
			cmp.Compare(b.TotalQuantity, a.TotalQuantity),
			cmp.Compare(a.FoodType, b.FoodType),
		)
	})

	totalItems := 0
	for _, r := range rows {
		totalItems += r.Items
	}
	demandRanks := derive.Rank(len(rows), func(i, j int) bool {
		return rows[i].Claims > rows[j].Claims
	})
	for i := range rows {
		r := &rows[i]
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.SupplyDemandRatio = derive.SafeRatio(float64(r.Items), float64(r.Claims), 2)
		r.MarketShare = derive.SafePercentage(float64(r.Items), float64(totalItems))
		r.PopularityRank = i + 1
		r.DemandRank = demandRanks[i]
	}

	return rows, nil
}

func (s *ReportService) foodTypeWastage(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.FoodTypeWastageRow, error) {
	rows, err := s.reportRepo.GetFoodTypeWastage(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].WastageRate = derive.SafePercentage(rows[i].WastedQuantity, rows[i].TotalQuantity)
	}
	slices.SortStableFunc(rows, func(a, b entity.FoodTypeWastageRow) int {
		return cmp.Or(
			derive.CompareNullsLast(a.WastageRate, b.WastageRate, true),
			cmp.Compare(a.FoodType, b.FoodType),
		)
	})

	return rows, nil
}

func (s *ReportService) foodWastageTrends(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.FoodWastageTrendRow, error) {
	rows, err := s.reportRepo.GetFoodWastageTrends(ctx, asOf)
	if err != nil {
		return nil, err
	}

	_, byType, err := s.urgencyBuckets(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.ItemWastageRate = derive.SafePercentage(float64(r.WastedItems), float64(r.Listings))
		r.QuantityWastageRate = derive.SafePercentage(r.WastedQuantity, r.TotalQuantity)
		r.SaveRate = derive.SafePercentage(r.SavedQuantity, r.TotalQuantity)
		if b, ok := byType[r.FoodType]; ok {
			r.CriticalItems = b.CriticalItems
			r.UrgentItems = b.UrgentItems
			r.SoonItems = b.SoonItems
		}
	}
	slices.SortStableFunc(rows, func(a, b entity.FoodWastageTrendRow) int {
		return cmp.Or(
			cmp.Compare(b.WastedQuantity, a.WastedQuantity),
			cmp.Compare(b.TotalQuantity, a.TotalQuantity),
			cmp.Compare(a.FoodType, b.FoodType),
		)
	})

	return rows, nil
}

func (s *ReportService) claimsPerFoodItem(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.FoodItemClaimsRow, error) {
	rows, err := s.reportRepo.GetFoodItemClaims(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.AvgDaysBeforeExpiry = derive.RoundPtr(r.AvgDaysBeforeExpiry, 1)
		r.ClaimsPerUnit = derive.SafeRatio(float64(r.Claims), r.Quantity, 2)
		if days, ok := derive.DaysUntilDate(r.ExpiryDate, asOf); ok {
			u := string(derive.ClassifyDays(days))
			r.DaysUntilExpiry = &days
			r.Urgency = &u
		}
		r.ItemStatus = derive.ItemStatus(r.DaysUntilExpiry, r.CompletedClaims, r.Claims)
	}
	slices.SortStableFunc(rows, func(a, b entity.FoodItemClaimsRow) int {
		return cmp.Or(
			cmp.Compare(b.Claims, a.Claims),
			cmp.Compare(a.FoodId, b.FoodId),
		)
	})

	return rows, nil
}

func (s *ReportService) expiringSoon(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.ExpiringFoodRow, error) {
	rows, err := s.reportRepo.GetExpiringFood(ctx, asOf, expiringWindowDays)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		days, _ := derive.DaysUntilDate(r.ExpiryDate, asOf)
		r.DaysUntilExpiry = days
		r.Urgency = string(derive.ClassifyDays(days))
	}
	slices.SortStableFunc(rows, func(a, b entity.ExpiringFoodRow) int {
		return cmp.Or(
			cmp.Compare(a.ExpiryDate, b.ExpiryDate),
			cmp.Compare(a.FoodId, b.FoodId),
		)
	})

	return rows, nil
}
