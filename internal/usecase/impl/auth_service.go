// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"

	"stargaze/internal/domain/entity"
	domainerrors "stargaze/internal/domain/errors"
	"stargaze/internal/domain/repository"
	"stargaze/internal/domain/service"
	"stargaze/internal/usecase"

	"github.com/pkg/errors"
)

// Defaults the upstream product hard-codes into every insert.
const (
	defaultCountry     = "India"
	defaultClientState = "Maharashtra"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	astrologerRepo repository.AstrologerRepository
	clientRepo     repository.ClientRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	astrologerRepo repository.AstrologerRepository,
	clientRepo repository.ClientRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:      txManager,
		astrologerRepo: astrologerRepo,
		clientRepo:     clientRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// RegisterAstrologer hashes the password and persists the astrologer record.
func (srv *authService) RegisterAstrologer(ctx context.Context, input *usecase.RegisterAstrologerInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", "role", entity.RoleAstrologer.String(), "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("astrologer registration failed")
	}

	astrologer := &entity.Astrologer{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		MobileNumber:    input.MobileNumber,
		AadharNumber:    input.AadharNumber,
		DOB:             input.DOB,
		Gender:          input.Gender,
		ExperienceYears: input.ExperienceYears,
		LanguagesKnown:  input.LanguagesKnown,
		Skills:          input.Skills,
		Email:           input.Email,
		ProfilePhoto:    input.ProfilePhoto,
		District:        input.District,
		Country:         defaultCountry,
		PinCode:         input.PinCode,
		RatePerMin:      input.RatePerMin,
		PasswordHash:    hashedPassword,
	}

	// The record plus its credential is one insert; the transaction keeps it atomic.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAstrologerRepository().Create(ctx, astrologer)
	})
	if err != nil {
		srv.logger.Error("Failed to execute astrologer registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute astrologer registration transaction")
	}
	srv.logger.Debug("Astrologer registered successfully", "astrologerID", astrologer.ID)

	return &usecase.RegisterOutput{ID: astrologer.ID, Email: astrologer.Email}, nil
}

// RegisterClient hashes the password and persists the client record.
func (srv *authService) RegisterClient(ctx context.Context, input *usecase.RegisterClientInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", "role", entity.RoleClient.String(), "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("client registration failed")
	}

	client := &entity.Client{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DOB:          input.DOB,
		City:         input.City,
		Birthplace:   input.Birthplace,
		MobileNumber: input.MobileNumber,
		BirthTime:    input.BirthTime,
		Gender:       input.Gender,
		Email:        input.Email,
		State:        defaultClientState,
		Country:      defaultCountry,
		District:     input.District,
		PinCode:      input.PinCode,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewClientRepository().Create(ctx, client)
	})
	if err != nil {
		srv.logger.Error("Failed to execute client registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute client registration transaction")
	}
	srv.logger.Debug("Client registered successfully", "clientID", client.ID)

	return &usecase.RegisterOutput{ID: client.ID, Email: client.Email}, nil
}

// LoginAstrologer verifies credentials against the astrologer store and issues a token.
func (srv *authService) LoginAstrologer(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "role", entity.RoleAstrologer.String(), "email", input.Email)

	astrologer, err := srv.astrologerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAstrologerNotFound) {
			srv.logger.Warn("Login failed: no astrologer account", "email", input.Email)

			return nil, domainerrors.ErrNoAstrologerAccount.WrapMessage("astrologer login failed")
		}

		return nil, errors.Wrap(err, "failed to look up astrologer")
	}

	if !srv.hasher.Check(ctx, input.Password, astrologer.PasswordHash) {
		srv.logger.Warn("Login failed: password mismatch", "email", input.Email)

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("astrologer login failed")
	}

	token, err := srv.tokenService.Issue(astrologer.ID, astrologer.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("Astrologer logged in successfully", "astrologerID", astrologer.ID)

	return &usecase.LoginOutput{Token: token}, nil
}

// LoginClient verifies credentials against the client store and issues a token.
func (srv *authService) LoginClient(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "role", entity.RoleClient.String(), "email", input.Email)

	client, err := srv.clientRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			srv.logger.Warn("Login failed: no client account", "email", input.Email)

			return nil, domainerrors.ErrNoClientAccount.WrapMessage("client login failed")
		}

		return nil, errors.Wrap(err, "failed to look up client")
	}

	if !srv.hasher.Check(ctx, input.Password, client.PasswordHash) {
		srv.logger.Warn("Login failed: password mismatch", "email", input.Email)

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("client login failed")
	}

	token, err := srv.tokenService.Issue(client.ID, client.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("Client logged in successfully", "clientID", client.ID)

	return &usecase.LoginOutput{Token: token}, nil
}
