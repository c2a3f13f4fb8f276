package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"yourtour/internal/achievements"
	"yourtour/internal/models/db_models"
	"yourtour/internal/models/response_models"
	"yourtour/internal/repositories"
	"yourtour/pkg/utils"
)

type locationKey struct {
	city  string
	state string
}

// fakeVisitStore backs both the repository and the in-transaction store with
// plain maps, so a test can inspect exactly what one visit persisted.
type fakeVisitStore struct {
	locations map[locationKey]*db_models.Location
	gems      map[locationKey]*db_models.Gem
	history   []db_models.History
	userGems  map[uuid.UUID]map[uuid.UUID]bool
	badges    map[uuid.UUID]map[string]bool
	gemsFound map[uuid.UUID]int
	wildCount int

	txErr     error
	txCount   int
	insertErr error
}

func newFakeVisitStore() *fakeVisitStore {
	return &fakeVisitStore{
		locations: map[locationKey]*db_models.Location{},
		gems:      map[locationKey]*db_models.Gem{},
		userGems:  map[uuid.UUID]map[uuid.UUID]bool{},
		badges:    map[uuid.UUID]map[string]bool{},
		gemsFound: map[uuid.UUID]int{},
	}
}

func (f *fakeVisitStore) InTransaction(ctx context.Context, fn func(store repositories.VisitStore) error) error {
	f.txCount++
	if f.txErr != nil {
		return f.txErr
	}
	return fn(f)
}

func (f *fakeVisitStore) FindLocation(ctx context.Context, city, state string) (*db_models.Location, error) {
	return f.locations[locationKey{city, state}], nil
}

func (f *fakeVisitStore) IsGemLocation(ctx context.Context, city, state string) (bool, error) {
	_, ok := f.gems[locationKey{city, state}]
	return ok, nil
}

func (f *fakeVisitStore) GetOrCreateLocation(ctx context.Context, city, state string, facts datatypes.JSON, isGem bool) (*db_models.Location, error) {
	key := locationKey{city, state}
	if loc, ok := f.locations[key]; ok {
		return loc, nil
	}
	loc := &db_models.Location{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		City:      city,
		State:     state,
		Facts:     facts,
		IsGem:     isGem,
	}
	f.locations[key] = loc
	if string(facts) == "{}" {
		f.wildCount++
	}
	return loc, nil
}

func (f *fakeVisitStore) InsertHistory(ctx context.Context, userID, tripID, locationID uuid.UUID) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.history = append(f.history, db_models.History{
		UserID:     userID,
		TripID:     tripID,
		LocationID: locationID,
	})
	return nil
}

func (f *fakeVisitStore) CountDistinctCities(ctx context.Context, userID uuid.UUID) (int, error) {
	seen := map[uuid.UUID]bool{}
	for _, h := range f.history {
		if h.UserID == userID {
			seen[h.LocationID] = true
		}
	}
	return len(seen), nil
}

func (f *fakeVisitStore) CountDistinctStates(ctx context.Context, userID uuid.UUID) (int, error) {
	states := map[string]bool{}
	for _, h := range f.history {
		if h.UserID != userID {
			continue
		}
		for _, loc := range f.locations {
			if loc.ID == h.LocationID {
				states[loc.State] = true
			}
		}
	}
	return len(states), nil
}

func (f *fakeVisitStore) CountWildVisits(ctx context.Context, userID uuid.UUID) (int, error) {
	return f.wildCount, nil
}

func (f *fakeVisitStore) FindGem(ctx context.Context, city, state string) (*db_models.Gem, error) {
	return f.gems[locationKey{city, state}], nil
}

func (f *fakeVisitStore) GrantGem(ctx context.Context, userID, gemID uuid.UUID) (bool, error) {
	if f.userGems[userID] == nil {
		f.userGems[userID] = map[uuid.UUID]bool{}
	}
	if f.userGems[userID][gemID] {
		return false, nil
	}
	f.userGems[userID][gemID] = true
	return true, nil
}

func (f *fakeVisitStore) CountUserGems(ctx context.Context, userID uuid.UUID) (int, error) {
	return len(f.userGems[userID]), nil
}

func (f *fakeVisitStore) SetGemsFound(ctx context.Context, userID uuid.UUID, count int) error {
	f.gemsFound[userID] = count
	return nil
}

func (f *fakeVisitStore) HeldBadges(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	held := map[string]bool{}
	for name := range f.badges[userID] {
		held[name] = true
	}
	return held, nil
}

func (f *fakeVisitStore) GrantBadge(ctx context.Context, userID uuid.UUID, badge string) (bool, error) {
	if f.badges[userID] == nil {
		f.badges[userID] = map[string]bool{}
	}
	if f.badges[userID][badge] {
		return false, nil
	}
	f.badges[userID][badge] = true
	return true, nil
}

type fakeTripRepo struct {
	trips map[string]*db_models.Trip
}

func (f *fakeTripRepo) InsertTx(trip *db_models.Trip, ctx context.Context) error { return nil }

func (f *fakeTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Trip, error) {
	return nil, nil
}

func (f *fakeTripRepo) FindByIdForUser(ctx context.Context, tripID string, userID uuid.UUID) (*db_models.Trip, error) {
	trip := f.trips[tripID]
	if trip == nil || trip.UserID != userID {
		return nil, nil
	}
	return trip, nil
}

type fakeFacts struct {
	payload json.RawMessage
	err     error
	calls   int
}

func (f *fakeFacts) GenerateCityFacts(ctx context.Context, city, state string) (json.RawMessage, error) {
	f.calls++
	return f.payload, f.err
}

type fakeBadgeCatalog struct{}

func (f *fakeBadgeCatalog) Describe(ctx context.Context, names []string) ([]response_models.BadgeResponse, error) {
	out := make([]response_models.BadgeResponse, 0, len(names))
	for _, name := range names {
		out = append(out, response_models.BadgeResponse{Name: name})
	}
	return out, nil
}

func (f *fakeBadgeCatalog) ListAll(ctx context.Context) ([]response_models.BadgeResponse, error) {
	return nil, nil
}

type fakeEmbeddings struct {
	indexed []string
}

func (f *fakeEmbeddings) IndexLocation(ctx context.Context, location *db_models.Location) {
	f.indexed = append(f.indexed, location.City)
}

func (f *fakeEmbeddings) SimilarLocations(ctx context.Context, locationID string) ([]response_models.SimilarLocationResponse, error) {
	return nil, nil
}

type visitFixture struct {
	service VisitServiceInterface
	store   *fakeVisitStore
	facts   *fakeFacts
	embed   *fakeEmbeddings
	userID  uuid.UUID
	tripID  uuid.UUID
}

func newVisitFixture(t *testing.T) *visitFixture {
	t.Helper()

	store := newFakeVisitStore()
	userID := uuid.New()
	tripID := uuid.New()
	trips := &fakeTripRepo{trips: map[string]*db_models.Trip{
		tripID.String(): {
			BaseModel: db_models.BaseModel{ID: tripID},
			UserID:    userID,
		},
	}}
	facts := &fakeFacts{payload: json.RawMessage(`{"title":"Memphis"}`)}
	embed := &fakeEmbeddings{}

	service := NewVisitService(
		store,
		trips,
		facts,
		achievements.NewEvaluator(achievements.DefaultRules()),
		&fakeBadgeCatalog{},
		embed,
	)

	return &visitFixture{
		service: service,
		store:   store,
		facts:   facts,
		embed:   embed,
		userID:  userID,
		tripID:  tripID,
	}
}

func TestRecordVisitCreatesLocationAndHistory(t *testing.T) {
	fx := newVisitFixture(t)

	resp, err := fx.service.RecordVisit(context.Background(), fx.userID, fx.tripID.String(), "Memphis", "Tennessee")
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}

	if resp.City != "Memphis" || resp.State != "Tennessee" {
		t.Fatalf("unexpected response location: %s, %s", resp.City, resp.State)
	}
	if len(fx.store.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(fx.store.history))
	}
	if string(resp.Facts) != `{"title":"Memphis"}` {
		t.Fatalf("facts not carried into response: %s", resp.Facts)
	}
	if len(fx.embed.indexed) != 1 {
		t.Fatalf("expected location to be indexed once, got %d", len(fx.embed.indexed))
	}
}

func TestRecordVisitReusesLocationAndSkipsFactsGeneration(t *testing.T) {
	fx := newVisitFixture(t)
	ctx := context.Background()

	first, err := fx.service.RecordVisit(ctx, fx.userID, fx.tripID.String(), "Memphis", "Tennessee")
	if err != nil {
		t.Fatalf("first visit: %v", err)
	}
	second, err := fx.service.RecordVisit(ctx, fx.userID, fx.tripID.String(), "Memphis", "Tennessee")
	if err != nil {
		t.Fatalf("second visit: %v", err)
	}

	if fx.facts.calls != 1 {
		t.Fatalf("facts generated %d times, want 1", fx.facts.calls)
	}
	if len(fx.store.locations) != 1 {
		t.Fatalf("expected 1 location row, got %d", len(fx.store.locations))
	}
	if len(fx.store.history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(fx.store.history))
	}
	if string(first.Facts) != string(second.Facts) {
		t.Fatalf("cached facts diverged between visits")
	}
	if len(fx.embed.indexed) != 1 {
		t.Fatalf("revisit should not re-index, got %d indexes", len(fx.embed.indexed))
	}
}

func TestRecordVisitFactsFailureStillRecordsVisit(t *testing.T) {
	fx := newVisitFixture(t)
	fx.facts.err = errors.New("summarizer down")

	resp, err := fx.service.RecordVisit(context.Background(), fx.userID, fx.tripID.String(), "Nowhere", "Kansas")
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}

	if string(resp.Facts) != "{}" {
		t.Fatalf("expected empty facts, got %s", resp.Facts)
	}
	if len(fx.store.history) != 1 {
		t.Fatalf("visit should still be recorded, got %d history entries", len(fx.store.history))
	}
	if len(fx.embed.indexed) != 0 {
		t.Fatalf("empty facts must not be indexed")
	}
	// An empty-facts city feeds the wild-visit track.
	for _, b := range resp.NewlyUnlockedBadges {
		if b.Name == "In The Wild" {
			return
		}
	}
	t.Fatalf("expected In The Wild badge, got %v", resp.NewlyUnlockedBadges)
}

func TestRecordVisitGemGrantedOnce(t *testing.T) {
	fx := newVisitFixture(t)
	gemID := uuid.New()
	fx.store.gems[locationKey{"Paris", "Tennessee"}] = &db_models.Gem{
		BaseModel: db_models.BaseModel{ID: gemID},
		City:      "Paris",
		State:     "Tennessee",
	}
	ctx := context.Background()

	first, err := fx.service.RecordVisit(ctx, fx.userID, fx.tripID.String(), "Paris", "Tennessee")
	if err != nil {
		t.Fatalf("first visit: %v", err)
	}
	if !first.IsGem {
		t.Fatalf("expected gem location")
	}
	if fx.store.gemsFound[fx.userID] != 1 {
		t.Fatalf("gemsFound = %d, want 1", fx.store.gemsFound[fx.userID])
	}

	unlockedGemHunter := false
	for _, b := range first.NewlyUnlockedBadges {
		if b.Name == "Gem Hunter I" {
			unlockedGemHunter = true
		}
	}
	if !unlockedGemHunter {
		t.Fatalf("first gem should unlock Gem Hunter I, got %v", first.NewlyUnlockedBadges)
	}

	second, err := fx.service.RecordVisit(ctx, fx.userID, fx.tripID.String(), "Paris", "Tennessee")
	if err != nil {
		t.Fatalf("second visit: %v", err)
	}
	if fx.store.gemsFound[fx.userID] != 1 {
		t.Fatalf("revisit changed gemsFound to %d", fx.store.gemsFound[fx.userID])
	}
	for _, b := range second.NewlyUnlockedBadges {
		if b.Name == "Gem Hunter I" {
			t.Fatalf("Gem Hunter I granted twice")
		}
	}
}

func TestRecordVisitTripNotFound(t *testing.T) {
	fx := newVisitFixture(t)

	_, err := fx.service.RecordVisit(context.Background(), fx.userID, uuid.NewString(), "Memphis", "Tennessee")
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestRecordVisitRejectsForeignTrip(t *testing.T) {
	fx := newVisitFixture(t)

	_, err := fx.service.RecordVisit(context.Background(), uuid.New(), fx.tripID.String(), "Memphis", "Tennessee")
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
	if len(fx.store.history) != 0 {
		t.Fatalf("foreign trip must not record history")
	}
}

func TestRecordVisitBlankCityOrState(t *testing.T) {
	fx := newVisitFixture(t)

	for _, tc := range []struct{ city, state string }{
		{"", "Tennessee"},
		{"Memphis", ""},
		{"   ", "Tennessee"},
	} {
		_, err := fx.service.RecordVisit(context.Background(), fx.userID, fx.tripID.String(), tc.city, tc.state)
		if !errors.Is(err, utils.ErrNoGeocodingResult) {
			t.Fatalf("city=%q state=%q: err = %v, want ErrNoGeocodingResult", tc.city, tc.state, err)
		}
	}
}

func TestRecordVisitTrimsWhitespace(t *testing.T) {
	fx := newVisitFixture(t)

	resp, err := fx.service.RecordVisit(context.Background(), fx.userID, fx.tripID.String(), "  Memphis ", " Tennessee ")
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if resp.City != "Memphis" || resp.State != "Tennessee" {
		t.Fatalf("whitespace not trimmed: %q, %q", resp.City, resp.State)
	}
}

func TestRecordVisitTransactionFailureSurfacesAsDatabaseError(t *testing.T) {
	fx := newVisitFixture(t)
	fx.store.txErr = errors.New("deadlock")

	_, err := fx.service.RecordVisit(context.Background(), fx.userID, fx.tripID.String(), "Memphis", "Tennessee")
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want ErrDatabaseError", err)
	}
}

func TestRecordVisitBadgeProgression(t *testing.T) {
	fx := newVisitFixture(t)
	ctx := context.Background()

	cities := []string{
		"Memphis", "Nashville", "Knoxville", "Chattanooga", "Clarksville",
		"Murfreesboro", "Franklin", "Jackson", "Johnson City", "Bartlett",
	}
	var last *response_models.VisitResponse
	for _, city := range cities {
		resp, err := fx.service.RecordVisit(ctx, fx.userID, fx.tripID.String(), city, "Tennessee")
		if err != nil {
			t.Fatalf("visit to %s: %v", city, err)
		}
		last = resp
	}

	found := false
	for _, b := range last.NewlyUnlockedBadges {
		if b.Name == "Tourist I" {
			found = true
		}
		if strings.HasPrefix(b.Name, "Explorer") {
			t.Fatalf("one state must not unlock %s", b.Name)
		}
	}
	if !found {
		t.Fatalf("tenth unique city should unlock Tourist I, got %v", last.NewlyUnlockedBadges)
	}
}
