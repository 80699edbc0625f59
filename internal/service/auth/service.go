package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/payease-hq/payease-backend-go/internal/domain/auth"
	"github.com/payease-hq/payease-backend-go/internal/domain/company"
	"github.com/payease-hq/payease-backend-go/internal/domain/user"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
	"github.com/payease-hq/payease-backend-go/internal/pkg/jwt"
	"github.com/payease-hq/payease-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db          *database.DB
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	jwtSvc      jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	jwtSvc jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtSvc:      jwtSvc,
	}
}

// Register implements auth.AuthService. The company, its default payroll
// settings and the first admin user are created in one transaction.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var newUser user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		comp, err := a.companyRepo.Create(txCtx, company.Company{
			Name:  req.CompanyName,
			Email: req.CompanyEmail,
		})
		if err != nil {
			return err
		}

		if _, err := a.companyRepo.UpsertSettings(txCtx, company.DefaultPayrollSettings(comp.ID)); err != nil {
			return err
		}

		newUser, err = a.userRepo.Create(txCtx, user.User{
			CompanyID:    comp.ID,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("Company registered", "company_id", newUser.CompanyID, "admin_email", newUser.Email)

	return a.issueTokens(newUser)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, user.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, user.ErrInvalidCredentials
	}

	return a.issueTokens(u)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	userID, err := a.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, user.ErrInvalidToken
	}

	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, user.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, err
	}

	access, expiresAt, err := a.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.CompanyID, u.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{AccessToken: access, ExpiresAt: expiresAt}, nil
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	access, expiresAt, err := a.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.CompanyID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refresh, refreshExpiresAt, err := a.jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
