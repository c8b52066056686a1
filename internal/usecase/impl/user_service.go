// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shapeme/internal/delivery/context"
	"shapeme/internal/domain/entity"
	domainerrors "shapeme/internal/domain/errors"
	"shapeme/internal/domain/repository"
	"shapeme/internal/domain/service"
	"shapeme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TokenTypeBearer is the token_type value returned on every login.
const TokenTypeBearer = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a regular account from a self-registration.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, false)
}

// RegisterAdmin creates an account with admin privileges.
func (srv *userService) RegisterAdmin(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, true)
}

func (srv *userService) register(ctx context.Context, input *usecase.RegisterUserInput, isAdmin bool) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Bool("isAdmin", isAdmin))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. The email must not be taken yet.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		// 2. Create the user.
		newUser := &entity.User{
			Email:                input.Email,
			Name:                 input.Name,
			PasswordHash:         hashedPassword,
			IsAdmin:              isAdmin,
			IsActive:             true,
			HotmartTransactionID: input.HotmartTransactionID,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials and issues a bearer token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	// 1. Find the user. An unknown email reports the same error as a bad
	// password so the response does not reveal which one it was.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// 3. Issue the access token.
	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		User:        user,
	}, nil
}

// GetByID loads a single user.
func (srv *userService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to load user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// ProvisionFromPurchase creates or reuses an account for an approved external
// purchase. Replayed notifications for an already-processed transaction are
// acknowledged without changing anything.
func (srv *userService) ProvisionFromPurchase(ctx context.Context, input *usecase.PurchaseInput) (*usecase.PurchaseOutput, error) {
	srv.log(ctx).Info("Provisioning account from purchase", slog.String("transactionID", input.TransactionID))

	// The buyer cannot pick a password through the webhook; a random
	// placeholder is stored until they reset it.
	placeholder, err := srv.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash placeholder password")
	}

	var output usecase.PurchaseOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. A transaction that was already processed is a no-op.
		existing, err := userRepo.FindByHotmartTransactionID(ctx, input.TransactionID)
		if err == nil {
			output = usecase.PurchaseOutput{User: existing, Created: false}

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check transaction")
		}

		// 2. A buyer with an existing account gets the purchase attached.
		byEmail, err := userRepo.FindByEmail(ctx, input.BuyerEmail)
		if err == nil {
			byEmail.HotmartTransactionID = input.TransactionID
			byEmail.IsActive = true
			if err := userRepo.Update(ctx, byEmail); err != nil {
				return errors.Wrap(err, "failed to attach purchase to existing user")
			}
			output = usecase.PurchaseOutput{User: byEmail, Created: false}

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check buyer email")
		}

		// 3. Otherwise provision a fresh account.
		newUser := &entity.User{
			Email:                input.BuyerEmail,
			Name:                 input.BuyerName,
			PasswordHash:         placeholder,
			IsAdmin:              false,
			IsActive:             true,
			HotmartTransactionID: input.TransactionID,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to provision user from purchase")
		}
		output = usecase.PurchaseOutput{User: newUser, Created: true}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute purchase provisioning transaction", slog.String("transactionID", input.TransactionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute purchase provisioning transaction")
	}
	srv.log(ctx).Debug("Purchase provisioned", slog.Int64("userID", output.User.ID), slog.Bool("created", output.Created))

	return &output, nil
}
