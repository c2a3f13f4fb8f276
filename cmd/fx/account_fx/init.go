package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yourtour/internal/repositories"
	"yourtour/internal/services"
	mem "yourtour/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, revokedTokens mem.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, revokedTokens)
}
