package service

import (
	"cmp"
	"context"
	"fmt"
	"food-wastage-api/internal/common"
	"food-wastage-api/internal/derive"
	"food-wastage-api/internal/entity"
	"slices"
	"time"
)

func (s *ReportService) claimStatusBreakdown(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.ClaimStatusRow, error) {
	rows, err := s.reportRepo.GetClaimStatuses(ctx, asOf)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, r := range rows {
		total += r.Claims
	}
	for i := range rows {
		r := &rows[i]
		r.Status = common.NormalizeStatus(r.Status)
		r.Percentage = derive.SafePercentage(float64(r.Claims), float64(total))
		r.AvgQuantity = derive.SafeRatio(r.TotalQuantity, float64(r.Claims), 2)
		r.AvgDaysSinceClaim = derive.RoundPtr(r.AvgDaysSinceClaim, 1)
		r.RecentPercentage = derive.SafePercentage(float64(r.RecentClaims), float64(r.Claims))
		if r.Status == common.Completed {
			r.ImpactKg = r.TotalQuantity
		}
		r.Insight = derive.StatusInsight(r.Status)
	}
	slices.SortStableFunc(rows, func(a, b entity.ClaimStatusRow) int {
		return cmp.Or(
			cmp.Compare(b.Claims, a.Claims),
			cmp.Compare(a.Status, b.Status),
		)
	})

	return rows, nil
}

// mealTypeClaims measures claim share against every stored claim, including
// claims on listings that no longer exist.
func (s *ReportService) mealTypeClaims(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.MealTypeRow, error) {
	rows, err := s.reportRepo.GetMealTypeClaims(ctx, asOf)
	if err != nil {
		return nil, err
	}

	counts, err := s.datasetRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.AvgPerSuccess = derive.SafeRatio(r.DistributedQuantity, float64(r.CompletedClaims), 2)
		r.DemandSupplyRatio = derive.SafeRatio(float64(r.Claims), float64(r.Items), 2)
		r.AvgDaysBeforeExpiry = derive.RoundPtr(r.AvgDaysBeforeExpiry, 1)
		r.ClaimShare = derive.SafePercentage(float64(r.Claims), float64(counts.Claims))
		r.Insight = derive.MealTypeInsight(r.MealType)
	}
	slices.SortStableFunc(rows, func(a, b entity.MealTypeRow) int {
		return cmp.Or(
			cmp.Compare(b.Claims, a.Claims),
			cmp.Compare(b.CompletedClaims, a.CompletedClaims),
			cmp.Compare(a.MealType, b.MealType),
		)
	})

	demandRanks := derive.Rank(len(rows), func(i, j int) bool {
		return rows[i].Claims > rows[j].Claims
	})
	successRanks := derive.Rank(len(rows), func(i, j int) bool {
		return derive.CompareNullsLast(rows[i].SuccessRate, rows[j].SuccessRate, true) < 0
	})
	for i := range rows {
		rows[i].DemandRank = demandRanks[i]
		rows[i].SuccessRank = successRanks[i]
	}

	return rows, nil
}

// recentClaims keeps the repository order: newest first, then claim id.
func (s *ReportService) recentClaims(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.ClaimListingRow, error) {
	rows, err := s.reportRepo.GetClaimListings(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Status = common.NormalizeStatus(rows[i].Status)
	}

	return rows, nil
}

func (s *ReportService) dailyClaimTrends(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.DailyClaimTrendRow, error) {
	rows, err := s.reportRepo.GetDailyClaimTrends(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		if d, err := time.Parse(dateLayout, r.ClaimDate); err == nil {
			r.DayOfWeek = d.Weekday().String()
			r.YearMonth = d.Format("2006-01")
		}
	}

	return rows, nil
}

func (s *ReportService) dailyExpiryTrends(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.DailyExpiryTrendRow, error) {
	rows, err := s.reportRepo.GetDailyExpiryTrends(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.SaveRate = derive.SafePercentage(float64(r.ItemsSaved), float64(r.Items))
		d, err := time.Parse(dateLayout, r.ExpiryDate)
		if err != nil {
			continue
		}
		year, week := d.ISOWeek()
		r.YearWeek = isoWeekLabel(year, week)
		r.YearMonth = d.Format("2006-01")
		r.Urgency = string(derive.UrgencyOf(d, asOf))
	}

	return rows, nil
}

// monthlyClaimTrends compares each month with the previous month that has claims.
func (s *ReportService) monthlyClaimTrends(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.MonthlyClaimTrendRow, error) {
	rows, err := s.reportRepo.GetMonthlyClaimTrends(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.SuccessRate = derive.SafePercentage(float64(r.CompletedClaims), float64(r.Claims))
		r.AvgDaysBeforeExpiry = derive.RoundPtr(r.AvgDaysBeforeExpiry, 1)
		if i == 0 {
			continue
		}
		prev := rows[i-1].Claims
		r.PreviousMonthClaims = &prev
		r.GrowthRate = derive.SafePercentage(float64(r.Claims-prev), float64(prev))
	}

	return rows, nil
}

func isoWeekLabel(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}
