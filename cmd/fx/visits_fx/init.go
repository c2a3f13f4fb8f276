package visits_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yourtour/internal/achievements"
	"yourtour/internal/repositories"
	"yourtour/internal/services"
	"yourtour/pkg/utils"
)

var Module = fx.Provide(
	provideVisitService,
	provideVisitRepo,
	provideBadgeRepo,
	provideBadgeCatalog,
	provideEvaluator,
	provideEmbeddingRepo,
	provideEmbeddingService)

func provideVisitRepo(db *gorm.DB) repositories.VisitRepository {
	return repositories.NewVisitRepository(db)
}

func provideBadgeRepo(db *gorm.DB) repositories.BadgeRepository {
	return repositories.NewBadgeRepository(db)
}

func provideBadgeCatalog(badgeRepo repositories.BadgeRepository) services.BadgeCatalogInterface {
	return services.NewBadgeCatalog(badgeRepo)
}

func provideEvaluator() *achievements.Evaluator {
	return achievements.NewEvaluator(achievements.DefaultRules())
}

func provideEmbeddingRepo(db *gorm.DB) repositories.LocationEmbeddingRepository {
	return repositories.NewLocationEmbeddingRepository(db)
}

func provideEmbeddingService(
	embeddingRepo repositories.LocationEmbeddingRepository,
	client utils.EmbeddingClient,
) services.EmbeddingServiceInterface {
	return services.NewEmbeddingService(embeddingRepo, client)
}

func provideVisitService(
	visitRepo repositories.VisitRepository,
	tripRepo repositories.TripRepository,
	facts services.FactsServiceInterface,
	evaluator *achievements.Evaluator,
	badges services.BadgeCatalogInterface,
	embeddings services.EmbeddingServiceInterface,
) services.VisitServiceInterface {
	return services.NewVisitService(visitRepo, tripRepo, facts, evaluator, badges, embeddings)
}
