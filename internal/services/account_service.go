package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"kissan/internal/models/db_models"
	"kissan/internal/models/request_models"
	"kissan/internal/models/response_models"
	"kissan/internal/repositories"
	"kissan/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	// Session resolves the identity behind a user id, silently yielding an
	// empty session on any failure rather than an error.
	Session(ctx context.Context, userID string) response_models.SessionResponse
	OAuthRedirectURL(redirectTo string) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.JWTManager
	oauthURL    string
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.JWTManager, oauthURL string) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		oauthURL:    oauthURL,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Email)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Session(ctx context.Context, userID string) response_models.SessionResponse {
	id, err := uuid.Parse(userID)
	if err != nil {
		return response_models.SessionResponse{}
	}

	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil || account == nil {
		return response_models.SessionResponse{}
	}

	return response_models.SessionResponse{
		UserID: account.ID.String(),
		Email:  account.Email,
		Name:   account.Name,
	}
}

func (a *AccountService) OAuthRedirectURL(redirectTo string) (string, error) {
	if a.oauthURL == "" {
		return "", utils.ErrUpstream
	}
	if redirectTo == "" {
		return a.oauthURL, nil
	}
	return fmt.Sprintf("%s?redirect_to=%s", a.oauthURL, url.QueryEscape(redirectTo)), nil
}
