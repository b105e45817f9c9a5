package dataset

import (
	"errors"
	"fmt"
	"food-wastage-api/internal/common"
	"food-wastage-api/internal/entity"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type Options struct {
	SynthesizeClaims bool
	Seed             int64
	Now              func() time.Time
}

// Load reads the four source files from dir. It never fails: an unreadable file
// yields an empty collection and a message in the returned status.
func Load(dir string, opts Options) (*entity.Dataset, *entity.LoadStatus) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	status := &entity.LoadStatus{RunId: uuid.New(), StartedAt: now(), Messages: make([]string, 0)}
	ds := &entity.Dataset{
		Providers:    make([]entity.Provider, 0),
		Receivers:    make([]entity.Receiver, 0),
		FoodListings: make([]entity.FoodListing, 0),
		Claims:       make([]entity.Claim, 0),
	}

	if r, ok := readSource(dir, providersTable, status); ok {
		ds.Providers = parseProviders(r)
	}
	if r, ok := readSource(dir, receiversTable, status); ok {
		ds.Receivers = parseReceivers(r)
	}
	if r, ok := readSource(dir, foodListingsTable, status); ok {
		ds.FoodListings = parseFoodListings(r)
	}

	claimsPath := filepath.Join(dir, claimsTable.file)
	r, err := readTable(claimsPath, claimsTable)
	switch {
	case err == nil:
		ds.Claims = parseClaims(r)
		status.Messages = append(status.Messages, fmt.Sprintf("claims: loaded %d rows", len(ds.Claims)))
	case errors.Is(err, fs.ErrNotExist) && opts.SynthesizeClaims && len(ds.FoodListings) > 0 && len(ds.Receivers) > 0:
		ds.Claims = SynthesizeClaims(ds.FoodListings, ds.Receivers, now(), opts.Seed)
		status.SyntheticClaims = true
		status.Messages = append(status.Messages, fmt.Sprintf("claims: %s not found, generated %d sample claims", claimsTable.file, len(ds.Claims)))
	default:
		status.Messages = append(status.Messages, fmt.Sprintf("claims: failed to load %s: %v", claimsTable.file, err))
	}

	status.Counts = entity.DatasetCounts{
		Providers:    len(ds.Providers),
		Receivers:    len(ds.Receivers),
		FoodListings: len(ds.FoodListings),
		Claims:       len(ds.Claims),
	}

	return ds, status
}

func readSource(dir string, t table, status *entity.LoadStatus) (*rows, bool) {
	r, err := readTable(filepath.Join(dir, t.file), t)
	if err != nil {
		status.Messages = append(status.Messages, fmt.Sprintf("%s: failed to load %s: %v", t.name, t.file, err))
		return nil, false
	}
	status.Messages = append(status.Messages, fmt.Sprintf("%s: loaded %d rows", t.name, len(r.records)))

	return r, true
}

// identity reads the id column, falling back to the 1-based row number when the
// column is missing or the cell is not a number.
func (r *rows) identity(record []string, column string, i int) int {
	if id, ok := parseInt(r.get(record, column)); ok {
		return id
	}

	return i + 1
}

func (r *rows) text(record []string, column string) string {
	if !r.has(column) {
		return common.NotAvailable
	}

	return r.get(record, column)
}

func parseProviders(r *rows) []entity.Provider {
	providers := make([]entity.Provider, 0, len(r.records))
	for i, rec := range r.records {
		providers = append(providers, entity.Provider{
			Id:      r.identity(rec, "provider_id", i),
			Name:    r.text(rec, "name"),
			Type:    r.text(rec, "type"),
			Address: r.text(rec, "address"),
			City:    r.text(rec, "city"),
			Contact: r.text(rec, "contact"),
		})
	}

	return providers
}

func parseReceivers(r *rows) []entity.Receiver {
	receivers := make([]entity.Receiver, 0, len(r.records))
	for i, rec := range r.records {
		receivers = append(receivers, entity.Receiver{
			Id:      r.identity(rec, "receiver_id", i),
			Name:    r.text(rec, "name"),
			Type:    r.text(rec, "type"),
			City:    r.text(rec, "city"),
			Contact: r.text(rec, "contact"),
		})
	}

	return receivers
}

// parseFoodListings stores 0 for a quantity or provider id that cannot be read.
func parseFoodListings(r *rows) []entity.FoodListing {
	listings := make([]entity.FoodListing, 0, len(r.records))
	for i, rec := range r.records {
		quantity, _ := parseFloat(r.get(rec, "quantity"))
		providerId, _ := parseInt(r.get(rec, "provider_id"))
		listings = append(listings, entity.FoodListing{
			Id:         r.identity(rec, "food_id", i),
			FoodName:   r.text(rec, "food_name"),
			Quantity:   quantity,
			ExpiryDate: NormalizeDate(r.text(rec, "expiry_date")),
			ProviderId: providerId,
			FoodType:   r.text(rec, "food_type"),
			MealType:   r.text(rec, "meal_type"),
			Location:   r.text(rec, "location"),
		})
	}

	return listings
}

// parseClaims keeps statuses as written; reports compare them case-insensitively.
func parseClaims(r *rows) []entity.Claim {
	claims := make([]entity.Claim, 0, len(r.records))
	for i, rec := range r.records {
		foodId, _ := parseInt(r.get(rec, "food_id"))
		receiverId, _ := parseInt(r.get(rec, "receiver_id"))
		claims = append(claims, entity.Claim{
			Id:         r.identity(rec, "claim_id", i),
			FoodId:     foodId,
			ReceiverId: receiverId,
			Status:     r.text(rec, "status"),
			Timestamp:  NormalizeTimestamp(r.text(rec, "timestamp")),
		})
	}

	return claims
}
