package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"yourtour/internal/achievements"
	"yourtour/internal/models/db_models"
	"yourtour/internal/models/response_models"
	"yourtour/internal/repositories"
	"yourtour/pkg/utils"
)

var emptyFacts = datatypes.JSON([]byte(`{}`))

type VisitServiceInterface interface {
	// RecordVisit appends a History entry for the geocoded (city, state),
	// creating the Location on first visit, and evaluates achievements in
	// the same transaction. The response carries any newly unlocked badges.
	RecordVisit(ctx context.Context, userID uuid.UUID, tripID, city, state string) (*response_models.VisitResponse, error)
}

type VisitService struct {
	visitRepo  repositories.VisitRepository
	tripRepo   repositories.TripRepository
	facts      FactsServiceInterface
	evaluator  *achievements.Evaluator
	badges     BadgeCatalogInterface
	embeddings EmbeddingServiceInterface
}

func NewVisitService(
	visitRepo repositories.VisitRepository,
	tripRepo repositories.TripRepository,
	facts FactsServiceInterface,
	evaluator *achievements.Evaluator,
	badges BadgeCatalogInterface,
	embeddings EmbeddingServiceInterface,
) VisitServiceInterface {
	return &VisitService{
		visitRepo:  visitRepo,
		tripRepo:   tripRepo,
		facts:      facts,
		evaluator:  evaluator,
		badges:     badges,
		embeddings: embeddings,
	}
}

func (v *VisitService) RecordVisit(ctx context.Context, userID uuid.UUID, tripID, city, state string) (*response_models.VisitResponse, error) {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	if city == "" || state == "" {
		return nil, utils.ErrNoGeocodingResult
	}

	trip, err := v.tripRepo.FindByIdForUser(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	// External calls happen before the transaction opens so a slow
	// summarizer cannot hold a database transaction hostage.
	existing, err := v.visitRepo.FindLocation(ctx, city, state)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	facts := emptyFacts
	isGem := false
	firstVisitToLocation := existing == nil
	if firstVisitToLocation {
		generated, err := v.facts.GenerateCityFacts(ctx, city, state)
		if err != nil {
			// A city without facts is still a recordable visit; it feeds
			// the "In The Wild" track instead of failing the request.
			log.Printf("facts generation failed for %s, %s: %v", city, state, err)
		} else {
			facts = datatypes.JSON(generated)
		}

		isGem, err = v.visitRepo.IsGemLocation(ctx, city, state)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	var (
		location *db_models.Location
		unlocked []string
	)

	err = v.visitRepo.InTransaction(ctx, func(store repositories.VisitStore) error {
		var txErr error
		location, txErr = store.GetOrCreateLocation(ctx, city, state, facts, isGem)
		if txErr != nil {
			return txErr
		}

		if txErr = store.InsertHistory(ctx, userID, trip.ID, location.ID); txErr != nil {
			return txErr
		}

		gemsFound, txErr := v.recordGemDiscovery(ctx, store, userID, location)
		if txErr != nil {
			return txErr
		}

		counts, txErr := v.readCounts(ctx, store, userID, gemsFound)
		if txErr != nil {
			return txErr
		}

		unlocked, txErr = v.evaluator.Evaluate(ctx, store, userID, counts)
		return txErr
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Embedding upkeep is best effort and never blocks the response.
	if firstVisitToLocation && !bytesEqual(location.Facts, emptyFacts) {
		v.embeddings.IndexLocation(ctx, location)
	}

	newBadges, err := v.badges.Describe(ctx, unlocked)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.VisitResponse{
		City:                location.City,
		State:               location.State,
		IsGem:               location.IsGem,
		Facts:               json.RawMessage(location.Facts),
		NewlyUnlockedBadges: newBadges,
	}, nil
}

// recordGemDiscovery grants the gem at most once per (user, gem) and keeps
// the user's gemsFound counter equal to their UserGem count.
func (v *VisitService) recordGemDiscovery(ctx context.Context, store repositories.VisitStore, userID uuid.UUID, location *db_models.Location) (int, error) {
	if !location.IsGem {
		return store.CountUserGems(ctx, userID)
	}

	gem, err := store.FindGem(ctx, location.City, location.State)
	if err != nil {
		return 0, err
	}
	if gem != nil {
		if _, err := store.GrantGem(ctx, userID, gem.ID); err != nil {
			return 0, err
		}
	}

	gemsFound, err := store.CountUserGems(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := store.SetGemsFound(ctx, userID, gemsFound); err != nil {
		return 0, err
	}
	return gemsFound, nil
}

func (v *VisitService) readCounts(ctx context.Context, store repositories.VisitStore, userID uuid.UUID, gemsFound int) (achievements.Counts, error) {
	cities, err := store.CountDistinctCities(ctx, userID)
	if err != nil {
		return achievements.Counts{}, err
	}
	states, err := store.CountDistinctStates(ctx, userID)
	if err != nil {
		return achievements.Counts{}, err
	}
	wild, err := store.CountWildVisits(ctx, userID)
	if err != nil {
		return achievements.Counts{}, err
	}

	return achievements.Counts{
		UniqueCities: cities,
		UniqueStates: states,
		GemsFound:    gemsFound,
		WildVisits:   wild,
	}, nil
}

func bytesEqual(a, b datatypes.JSON) bool {
	return string(a) == string(b)
}
