package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"yourtour/internal/models/db_models"
	"yourtour/internal/models/response_models"
	"yourtour/pkg/utils"
)

type fakeNavigation struct {
	geocoded map[string]response_models.GeocodeResponse
	route    *Route
	routeErr error
}

func (f *fakeNavigation) Geocode(ctx context.Context, address string) (*response_models.GeocodeResponse, error) {
	if g, ok := f.geocoded[address]; ok {
		return &g, nil
	}
	return nil, utils.ErrNoGeocodingResult
}

func (f *fakeNavigation) ReverseGeocode(ctx context.Context, lat, lon float64) (*Place, error) {
	return nil, utils.ErrNoGeocodingResult
}

func (f *fakeNavigation) NearestCity(lat, lon float64) (*response_models.NearestCityResponse, error) {
	return nil, utils.ErrNoGeocodingResult
}

func (f *fakeNavigation) Route(ctx context.Context, startLat, startLon, endLat, endLon float64) (*Route, error) {
	return f.route, f.routeErr
}

type fakeTripStore struct {
	fakeTripRepo
	inserted []*db_models.Trip
}

func (f *fakeTripStore) InsertTx(trip *db_models.Trip, ctx context.Context) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.inserted = append(f.inserted, trip)
	return nil
}

func (f *fakeTripStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Trip, error) {
	var out []db_models.Trip
	for _, trip := range f.inserted {
		if trip.UserID == userID && len(out) < limit {
			out = append(out, *trip)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	entries   []db_models.History
	locations map[string]*db_models.Location
}

func (f *fakeHistoryRepo) ListTripLocations(ctx context.Context, tripID string, userID uuid.UUID) ([]db_models.History, error) {
	var out []db_models.History
	for _, e := range f.entries {
		if e.TripID.String() == tripID && e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) FindLocationById(ctx context.Context, id string) (*db_models.Location, error) {
	return f.locations[id], nil
}

func TestPlanTripPersistsAndFormats(t *testing.T) {
	nav := &fakeNavigation{
		geocoded: map[string]response_models.GeocodeResponse{
			"Nashville, TN": {Latitude: 36.1627, Longitude: -86.7816},
			"Memphis, TN":   {Latitude: 35.1495, Longitude: -90.0490},
		},
		route: &Route{
			Miles:   212.44,
			Minutes: 190,
			Steps: []RouteStep{
				{Miles: 1.0, Instruction: "Head out onto Broadway"},
				{Miles: 211.44, Instruction: "Merge onto I-40"},
			},
		},
	}
	trips := &fakeTripStore{}
	service := NewTripService(trips, &fakeHistoryRepo{}, nav)
	userID := uuid.New()

	resp, err := service.PlanTrip(context.Background(), userID, "Nashville, TN", "Memphis, TN")
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	if len(trips.inserted) != 1 {
		t.Fatalf("expected 1 trip persisted, got %d", len(trips.inserted))
	}
	if trips.inserted[0].UserID != userID {
		t.Fatalf("trip owner = %s, want %s", trips.inserted[0].UserID, userID)
	}
	if resp.TripID != trips.inserted[0].ID.String() {
		t.Fatalf("response trip id %s does not match persisted %s", resp.TripID, trips.inserted[0].ID)
	}
	if resp.Miles != 212.44 || resp.Minutes != 190 {
		t.Fatalf("route totals = %v mi, %d min", resp.Miles, resp.Minutes)
	}
	if len(resp.Steps) != 2 || resp.Steps[0].Instruction != "Head out onto Broadway" {
		t.Fatalf("unexpected steps: %v", resp.Steps)
	}
}

func TestPlanTripGeocodeFailureDoesNotPersist(t *testing.T) {
	nav := &fakeNavigation{geocoded: map[string]response_models.GeocodeResponse{
		"Nashville, TN": {Latitude: 36.1627, Longitude: -86.7816},
	}}
	trips := &fakeTripStore{}
	service := NewTripService(trips, &fakeHistoryRepo{}, nav)

	_, err := service.PlanTrip(context.Background(), uuid.New(), "Nashville, TN", "Nowhere At All")
	if !errors.Is(err, utils.ErrNoGeocodingResult) {
		t.Fatalf("err = %v, want ErrNoGeocodingResult", err)
	}
	if len(trips.inserted) != 0 {
		t.Fatalf("failed plan must not persist a trip")
	}
}

func TestGetTripCities(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	location := db_models.Location{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		City:      "Memphis",
		State:     "Tennessee",
		Facts:     datatypes.JSON(`{"title":"Memphis"}`),
	}

	trips := &fakeTripStore{}
	trips.fakeTripRepo.trips = map[string]*db_models.Trip{
		tripID.String(): {BaseModel: db_models.BaseModel{ID: tripID}, UserID: userID},
	}
	history := &fakeHistoryRepo{entries: []db_models.History{
		{UserID: userID, TripID: tripID, LocationID: location.ID, Location: location},
	}}
	service := NewTripService(trips, history, &fakeNavigation{})

	resp, err := service.GetTripCities(context.Background(), userID, tripID.String())
	if err != nil {
		t.Fatalf("GetTripCities: %v", err)
	}
	if len(resp.Cities) != 1 || resp.Cities[0].City != "Memphis" {
		t.Fatalf("unexpected cities: %v", resp.Cities)
	}
}

func TestGetTripCitiesEmptyTrip(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	trips := &fakeTripStore{}
	trips.fakeTripRepo.trips = map[string]*db_models.Trip{
		tripID.String(): {BaseModel: db_models.BaseModel{ID: tripID}, UserID: userID},
	}
	service := NewTripService(trips, &fakeHistoryRepo{}, &fakeNavigation{})

	_, err := service.GetTripCities(context.Background(), userID, tripID.String())
	if !errors.Is(err, utils.ErrLocationNotFound) {
		t.Fatalf("err = %v, want ErrLocationNotFound", err)
	}
}

func TestGetTripCitiesForeignTrip(t *testing.T) {
	tripID := uuid.New()
	trips := &fakeTripStore{}
	trips.fakeTripRepo.trips = map[string]*db_models.Trip{
		tripID.String(): {BaseModel: db_models.BaseModel{ID: tripID}, UserID: uuid.New()},
	}
	service := NewTripService(trips, &fakeHistoryRepo{}, &fakeNavigation{})

	_, err := service.GetTripCities(context.Background(), uuid.New(), tripID.String())
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestGetLocation(t *testing.T) {
	location := &db_models.Location{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		City:      "Knoxville",
		State:     "Tennessee",
		Facts:     datatypes.JSON(`{}`),
	}
	history := &fakeHistoryRepo{locations: map[string]*db_models.Location{
		location.ID.String(): location,
	}}
	service := NewTripService(&fakeTripStore{}, history, &fakeNavigation{})

	resp, err := service.GetLocation(context.Background(), location.ID.String())
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if resp.City != "Knoxville" {
		t.Fatalf("city = %s", resp.City)
	}

	_, err = service.GetLocation(context.Background(), uuid.NewString())
	if !errors.Is(err, utils.ErrLocationNotFound) {
		t.Fatalf("missing location err = %v, want ErrLocationNotFound", err)
	}
}
