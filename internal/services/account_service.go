package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"yourtour/internal/models/db_models"
	"yourtour/internal/models/request_models"
	"yourtour/internal/models/response_models"
	"yourtour/internal/repositories"
	mem "yourtour/pkg/memcache"
	"yourtour/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.TokenPairResponse, error)
	Logout(refreshToken string) error
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) error
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	revokedTokens mem.RevokedTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, revokedTokens mem.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		revokedTokens: revokedTokens,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     request.Username,
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Phone:        request.Phone,
		HomeState:    request.HomeState,
	}

	if err := a.accountRepo.InsertTx(user, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenPairResponse, error) {
	user, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueTokenPair(user.ID)
}

func (a *AccountService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenPairResponse, error) {
	claims, err := utils.ValidateToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	if a.revokedTokens.IsRevoked(claims.ID) {
		return nil, utils.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	user, err := a.accountRepo.FindById(ctx, claims.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidToken
	}

	// Rotate: the presented token stops working once a new pair is issued.
	if claims.ExpiresAt != nil {
		a.revokedTokens.Revoke(claims.ID, time.Until(claims.ExpiresAt.Time))
	}

	return a.issueTokenPair(userID)
}

func (a *AccountService) Logout(refreshToken string) error {
	claims, err := utils.ValidateToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return utils.ErrInvalidToken
	}
	if claims.ExpiresAt != nil {
		a.revokedTokens.Revoke(claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	return nil
}

func (a *AccountService) issueTokenPair(userID uuid.UUID) (*response_models.TokenPairResponse, error) {
	accessToken, err := utils.CreateAccessToken(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	refreshToken, err := utils.CreateRefreshToken(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	return &response_models.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	user, err := a.accountRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	cities, err := a.accountRepo.CountDistinctCities(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	states, err := a.accountRepo.CountDistinctStates(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	badges := make([]response_models.BadgeResponse, 0, len(user.Badges))
	for _, grant := range user.Badges {
		badges = append(badges, response_models.BadgeResponse{
			Name:           grant.Badge.Name,
			Description:    grant.Badge.Description,
			StaticImageURL: grant.Badge.StaticImageURL,
		})
	}

	gems := make([]response_models.GemResponse, 0, len(user.Gems))
	for _, grant := range user.Gems {
		gems = append(gems, response_models.GemResponse{
			City:        grant.Gem.City,
			State:       grant.Gem.State,
			Description: grant.Gem.Description,
		})
	}

	interests := make([]string, 0, len(user.Interests))
	for _, interest := range user.Interests {
		interests = append(interests, interest.Name)
	}

	return &response_models.ProfileResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		HomeState:   user.HomeState,
		Badges:      badges,
		Gems:        gems,
		Interests:   interests,
		GemsFound:   len(gems),
		BadgesFound: len(badges),
		CitiesFound: int(cities),
		StatesFound: int(states),
	}, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) error {
	user, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	if request.Password != nil {
		if request.OldPassword == nil {
			return utils.ErrValidation
		}
		if err := utils.ComparePasswords(user.PasswordHash, *request.OldPassword); err != nil {
			return utils.ErrInvalidCredentials
		}
		hashed, err := utils.HashPassword(*request.Password)
		if err != nil {
			return utils.ErrDatabaseError
		}
		user.PasswordHash = hashed
	}

	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.Username != nil {
		user.Username = *request.Username
	}
	if request.Phone != nil {
		user.Phone = *request.Phone
	}
	if request.HomeState != nil {
		user.HomeState = *request.HomeState
	}

	if err := a.accountRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	if request.Interests != nil {
		if err := a.accountRepo.ReplaceInterests(ctx, userID, request.Interests); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}
