package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnlive/internal/repositories"
	"learnlive/internal/services"
	"learnlive/pkg/middleware"
	"learnlive/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, providePrincipalResolver)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, logger)
}

func providePrincipalResolver(accountService services.AccountServiceInterface) middleware.PrincipalResolver {
	return accountService
}
