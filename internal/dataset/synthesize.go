package dataset

import (
	"food-wastage-api/internal/common"
	"food-wastage-api/internal/entity"
	"math/rand"
	"time"
)

const (
	maxSyntheticClaims = 200
	syntheticWindow    = 180 * 24 * time.Hour
)

// SynthesizeClaims builds sample claims for a dataset shipped without them:
// one per listing up to 200, evenly spaced over the trailing 180 days, with
// food and receiver ids drawn with replacement and a 65/20/15 status mix.
// The same seed gives the same claims.
func SynthesizeClaims(listings []entity.FoodListing, receivers []entity.Receiver, now time.Time, seed int64) []entity.Claim {
	n := len(listings)
	if n > maxSyntheticClaims {
		n = maxSyntheticClaims
	}
	if n == 0 || len(receivers) == 0 {
		return make([]entity.Claim, 0)
	}

	rng := rand.New(rand.NewSource(seed))
	statuses := syntheticStatuses(n)
	rng.Shuffle(len(statuses), func(i, j int) {
		statuses[i], statuses[j] = statuses[j], statuses[i]
	})

	start := now.Add(-syntheticWindow)
	claims := make([]entity.Claim, 0, n)
	for i := 0; i < n; i++ {
		ts := start
		if n > 1 {
			ts = start.Add(time.Duration(int64(syntheticWindow) * int64(i) / int64(n-1)))
		}

		claims = append(claims, entity.Claim{
			Id:         i + 1,
			FoodId:     listings[rng.Intn(len(listings))].Id,
			ReceiverId: receivers[rng.Intn(len(receivers))].Id,
			Status:     statuses[i],
			Timestamp:  ts.Format(TimestampLayout),
		})
	}

	return claims
}

// syntheticStatuses truncates each share to a whole count and tops up with Completed.
func syntheticStatuses(n int) []string {
	statuses := make([]string, 0, n)
	add := func(status string, count int) {
		for i := 0; i < count; i++ {
			statuses = append(statuses, status)
		}
	}

	add(common.Completed, int(float64(n)*0.65))
	add(common.Pending, int(float64(n)*0.20))
	add(common.Cancelled, int(float64(n)*0.15))
	for len(statuses) < n {
		statuses = append(statuses, common.Completed)
	}

	return statuses[:n]
}
