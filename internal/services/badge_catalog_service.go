package services

import (
	"context"

	"yourtour/internal/models/response_models"
	"yourtour/internal/repositories"
)

// BadgeCatalogInterface resolves badge names from the evaluator into catalog
// rows the client can render.
type BadgeCatalogInterface interface {
	Describe(ctx context.Context, names []string) ([]response_models.BadgeResponse, error)
	ListAll(ctx context.Context) ([]response_models.BadgeResponse, error)
}

type BadgeCatalog struct {
	badgeRepo repositories.BadgeRepository
}

func NewBadgeCatalog(badgeRepo repositories.BadgeRepository) BadgeCatalogInterface {
	return &BadgeCatalog{badgeRepo: badgeRepo}
}

func (b *BadgeCatalog) Describe(ctx context.Context, names []string) ([]response_models.BadgeResponse, error) {
	badges, err := b.badgeRepo.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]response_models.BadgeResponse, len(badges))
	for _, badge := range badges {
		byName[badge.Name] = response_models.BadgeResponse{
			Name:           badge.Name,
			Description:    badge.Description,
			StaticImageURL: badge.StaticImageURL,
		}
	}

	// Preserve the grant order the evaluator produced.
	out := make([]response_models.BadgeResponse, 0, len(names))
	for _, name := range names {
		if resp, ok := byName[name]; ok {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (b *BadgeCatalog) ListAll(ctx context.Context) ([]response_models.BadgeResponse, error) {
	badges, err := b.badgeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.BadgeResponse, 0, len(badges))
	for _, badge := range badges {
		out = append(out, response_models.BadgeResponse{
			Name:           badge.Name,
			Description:    badge.Description,
			StaticImageURL: badge.StaticImageURL,
		})
	}
	return out, nil
}
