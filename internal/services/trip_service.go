package services

import (
	"context"

	"github.com/google/uuid"
	"yourtour/internal/models/db_models"
	"yourtour/internal/models/response_models"
	"yourtour/internal/repositories"
	"yourtour/pkg/utils"
)

const tripHistoryLimit = 20

type TripServiceInterface interface {
	// PlanTrip geocodes both endpoints, fetches the driving route, persists
	// the Trip row and returns the formatted itinerary.
	PlanTrip(ctx context.Context, userID uuid.UUID, start, end string) (*response_models.DirectionsResponse, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripSummaryResponse, error)
	GetTripCities(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripCitiesResponse, error)
	GetLocation(ctx context.Context, locationID string) (*response_models.LocationResponse, error)
}

type TripService struct {
	tripRepo    repositories.TripRepository
	historyRepo repositories.HistoryRepository
	navigation  NavigationServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	historyRepo repositories.HistoryRepository,
	navigation NavigationServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		historyRepo: historyRepo,
		navigation:  navigation,
	}
}

func (t *TripService) PlanTrip(ctx context.Context, userID uuid.UUID, start, end string) (*response_models.DirectionsResponse, error) {
	startPoint, err := t.navigation.Geocode(ctx, start)
	if err != nil {
		return nil, err
	}
	endPoint, err := t.navigation.Geocode(ctx, end)
	if err != nil {
		return nil, err
	}

	route, err := t.navigation.Route(ctx, startPoint.Latitude, startPoint.Longitude, endPoint.Latitude, endPoint.Longitude)
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		UserID:       userID,
		StartingTown: start,
		EndingTown:   end,
	}
	if err := t.tripRepo.InsertTx(trip, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	steps := make([]response_models.RouteStepResponse, 0, len(route.Steps))
	for _, step := range route.Steps {
		steps = append(steps, response_models.RouteStepResponse{
			Miles:       step.Miles,
			Instruction: step.Instruction,
		})
	}

	return &response_models.DirectionsResponse{
		TripID:       trip.ID.String(),
		StartingTown: start,
		EndingTown:   end,
		Miles:        route.Miles,
		Minutes:      route.Minutes,
		Steps:        steps,
	}, nil
}

func (t *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripSummaryResponse, error) {
	trips, err := t.tripRepo.ListByUser(ctx, userID, tripHistoryLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummaryResponse, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, response_models.TripSummaryResponse{
			TripID:       trip.ID.String(),
			StartingTown: trip.StartingTown,
			EndingTown:   trip.EndingTown,
			CreatedAt:    trip.CreatedAt,
		})
	}
	return summaries, nil
}

func (t *TripService) GetTripCities(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripCitiesResponse, error) {
	trip, err := t.tripRepo.FindByIdForUser(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	entries, err := t.historyRepo.ListTripLocations(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(entries) == 0 {
		return nil, utils.ErrLocationNotFound
	}

	cities := make([]response_models.TripCityResponse, 0, len(entries))
	for _, entry := range entries {
		cities = append(cities, response_models.TripCityResponse{
			ID:        entry.Location.ID.String(),
			City:      entry.Location.City,
			State:     entry.Location.State,
			Facts:     []byte(entry.Location.Facts),
			IsGem:     entry.Location.IsGem,
			VisitedAt: entry.CreatedAt,
		})
	}

	return &response_models.TripCitiesResponse{
		TripID: tripID,
		Cities: cities,
	}, nil
}

func (t *TripService) GetLocation(ctx context.Context, locationID string) (*response_models.LocationResponse, error) {
	location, err := t.historyRepo.FindLocationById(ctx, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}

	return &response_models.LocationResponse{
		ID:    location.ID.String(),
		City:  location.City,
		State: location.State,
		Facts: []byte(location.Facts),
		IsGem: location.IsGem,
	}, nil
}
