package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kissan/internal/config"
	"kissan/internal/repositories"
	"kissan/internal/services"
	"kissan/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenManager)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

// provideTokenManager builds the JWT signer from the loaded config, after
// godotenv has run, so a secret supplied via .env is honored.
func provideTokenManager(cfg config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.JWTManager, cfg config.Config) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, cfg.GoogleOAuthURL)
}
