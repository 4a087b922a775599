package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"learnlive/internal/models/db_models"
	"learnlive/internal/models/request_models"
	"learnlive/internal/models/response_models"
	"learnlive/internal/repositories"
	"learnlive/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.Account, error)
	// Authenticate verifies credentials and returns the matching account.
	Authenticate(ctx context.Context, email, password string) (*db_models.Account, error)
	Login(ctx context.Context, email, password string) (*response_models.TokenResponse, error)
	ResolvePrincipal(ctx context.Context, token string) (*utils.Principal, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	UpdateClassLevel(ctx context.Context, principal *utils.Principal, classLevel string) (*db_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	logger      *zap.Logger
	compare     func(hashedPassword, plainPassword string) error
}

// dummyPasswordHash is compared against on unknown emails so both login
// paths pay for one bcrypt comparison.
var dummyPasswordHash = sync.OnceValue(func() string {
	hashed, _ := utils.HashPassword("learnlive-unknown-account")
	return hashed
})

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger.Named("account"),
		compare:     utils.ComparePasswords,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.Account, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storageError("find account", err)
	}
	if existingAccount != nil {
		return nil, utils.ErrDuplicateEmail
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Email:        email,
		Name:         strings.TrimSpace(request.Name),
		Role:         request.Role,
		PasswordHash: hashedPassword,
	}
	if request.Role == utils.RoleStudent && request.ClassLevel != nil && *request.ClassLevel != "" {
		level := *request.ClassLevel
		account.ClassLevel = &level
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, storageError("insert account", err)
	}

	a.logger.Info("account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("role", account.Role))
	return account, nil
}

func (a *AccountService) Authenticate(ctx context.Context, email, password string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, storageError("find account", err)
	}
	if account == nil {
		_ = a.compare(dummyPasswordHash(), password)
		return nil, utils.ErrBadCredentials
	}

	if err := a.compare(account.PasswordHash, password); err != nil {
		return nil, utils.ErrBadCredentials
	}
	return account, nil
}

func (a *AccountService) Login(ctx context.Context, email, password string) (*response_models.TokenResponse, error) {
	account, err := a.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, utils.ErrBadCredentials) {
			a.logger.Info("login rejected")
		}
		return nil, err
	}

	token, _, err := a.tokens.CreateToken(account.Email)
	if err != nil {
		return nil, err
	}

	return &response_models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ResolvePrincipal validates the token and re-reads the subject account, so a
// token for an account that no longer exists is rejected.
func (a *AccountService) ResolvePrincipal(ctx context.Context, token string) (*utils.Principal, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	account, err := a.accountRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, storageError("find account", err)
	}
	if account == nil {
		return nil, utils.ErrInvalidToken
	}

	return &utils.Principal{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
	}, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, storageError("find account", err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) UpdateClassLevel(ctx context.Context, principal *utils.Principal, classLevel string) (*db_models.Account, error) {
	if err := CanUpdateClassLevel(principal); err != nil {
		return nil, err
	}

	if err := a.accountRepo.UpdateClassLevel(ctx, principal.AccountID, classLevel); err != nil {
		return nil, storageError("update class level", err)
	}

	return a.GetAccount(ctx, principal.AccountID)
}
