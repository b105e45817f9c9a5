package service

import (
	"context"
	"food-wastage-api/internal/common"
	"food-wastage-api/internal/derive"
	"food-wastage-api/internal/entity"
	"time"
)

// systemAnalysis condenses several reports into one row with a health label
// and two recommendations.
func (s *ReportService) systemAnalysis(ctx context.Context, asOf time.Time, _ entity.ReportFilters) ([]entity.SystemAnalysisRow, error) {
	counts, err := s.datasetRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	availability, err := s.reportRepo.GetFoodAvailability(ctx, asOf)
	if err != nil {
		return nil, err
	}
	statuses, err := s.reportRepo.GetClaimStatuses(ctx, asOf)
	if err != nil {
		return nil, err
	}
	types, err := s.reportRepo.GetProviderTypeContributions(ctx, asOf)
	if err != nil {
		return nil, err
	}
	demand, err := s.reportRepo.GetCityDemand(ctx, asOf)
	if err != nil {
		return nil, err
	}
	wastage, err := s.reportRepo.GetFoodTypeWastage(ctx, asOf)
	if err != nil {
		return nil, err
	}
	ecosystems, err := s.reportRepo.GetCityEcosystems(ctx, asOf)
	if err != nil {
		return nil, err
	}

	a := entity.SystemAnalysisRow{
		TotalProviders:    counts.Providers,
		TotalReceivers:    counts.Receivers,
		TotalFoodItems:    counts.FoodListings,
		TotalFoodQuantity: availability.TotalQuantity,
		TotalClaims:       counts.Claims,
	}

	for _, st := range statuses {
		if common.NormalizeStatus(st.Status) == common.Completed {
			a.SuccessfulDistributions += st.Claims
		}
	}
	a.SuccessRate = derive.SafePercentage(float64(a.SuccessfulDistributions), float64(a.TotalClaims))
	a.SystemHealth = derive.HealthLabel(a.SuccessRate)

	for _, t := range types {
		if a.TopProviderType == nil || better(t.TotalQuantity, a.TopProviderContribution, t.ProviderType, *a.TopProviderType) {
			name := t.ProviderType
			a.TopProviderType = &name
			a.TopProviderContribution = t.TotalQuantity
		}
	}

	for _, d := range demand {
		if a.TopCity == nil || better(d.DistributedQuantity, a.TopCityDistribution, d.City, *a.TopCity) {
			city := d.City
			a.TopCity = &city
			a.TopCityDistribution = d.DistributedQuantity
		}
	}

	var wasted, total float64
	for _, w := range wastage {
		wasted += w.WastedQuantity
		total += w.TotalQuantity
		if a.MostWastedFoodType == nil || better(w.WastedQuantity, a.HighestWasteQuantity, w.FoodType, *a.MostWastedFoodType) {
			foodType := w.FoodType
			a.MostWastedFoodType = &foodType
			a.HighestWasteQuantity = w.WastedQuantity
		}
	}
	a.OverallWastageRate = derive.SafePercentage(wasted, total)
	if a.MostWastedFoodType != nil {
		action := "Focus on " + *a.MostWastedFoodType + " wastage reduction"
		a.PrimaryAction = &action
	}

	// expansion targets the provider city with the thinnest coverage
	var weakest *entity.CityEcosystemRow
	for i := range ecosystems {
		e := &ecosystems[i]
		if e.Providers > 0 && e.Receivers > 0 {
			a.CitiesWithCompleteEcosystem++
		}
		if e.Providers == 0 {
			continue
		}
		strength := e.Providers + e.Receivers
		if weakest == nil || strength < weakest.Providers+weakest.Receivers ||
			(strength == weakest.Providers+weakest.Receivers && e.City < weakest.City) {
			weakest = e
		}
	}
	if weakest != nil {
		recommendation := "Expand operations in " + weakest.City + " for better coverage"
		a.ExpansionRecommendation = &recommendation
	}

	return []entity.SystemAnalysisRow{a}, nil
}

// better picks the larger value, breaking ties by the smaller name.
func better(value, best float64, name, bestName string) bool {
	if value != best {
		return value > best
	}

	return name < bestName
}
