package commands

import (
	"context"
	"log/slog"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/pkg/jwt"
	"sandwich-storefront/internal/pkg/password"
	"sandwich-storefront/internal/usecase/queries"
	"sandwich-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	User        *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	// EnsureAdmin creates the admin account when the email is unknown.
	EnsureAdmin(ctx context.Context, email, plain string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	// only the back office has accounts
	if !role.AtLeast(user.RoleAdmin) {
		return nil, errs.ErrInvalidCredentials
	}

	accessToken, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		AccessToken: accessToken,
		User:        view,
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, email, plain string) error {
	credentials, err := user.NewCredentials(email, plain)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := password.Validate(plain); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().FindByEmail(ctx, tx.DB(), credentials.Email())
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		hash, err := password.HashPassword(plain)
		if err != nil {
			return err
		}
		admin := user.NewUser(credentials.Email(), hash, user.RoleAdmin)
		if err := tx.Users().Create(ctx, tx.DB(), admin); err != nil {
			return err
		}
		slog.Info("admin account created", "email", credentials.Email().Value())
		return nil
	})
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password to prevent user enumeration
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, errs.ErrInactiveUser
	}
	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	return view, nil
}
