package derive

// CityPerformanceScore weights listing volume, kg listed (per 100) and completed claims.
func CityPerformanceScore(listings int, quantity float64, completed int) float64 {
	return Round(float64(listings)*0.4+quantity*0.3/100+float64(completed)*0.3, 2)
}

// ProviderImpactScore weights kg distributed, reach and food variety.
func ProviderImpactScore(distributed float64, receivers, foodTypes int) float64 {
	return Round(distributed*0.6+float64(receivers)*10*0.2+float64(foodTypes)*5*0.2, 2)
}
