package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shapeme/config"
	"shapeme/internal/domain/entity"
	domainerrors "shapeme/internal/domain/errors"
	"shapeme/internal/domain/repository"
	"shapeme/internal/infra/auth"
	mockRepo "shapeme/internal/mocks/repository"
	"shapeme/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{UserRepository: userRepo},
	}
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{service: service, userRepo: userRepo}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "pw123",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 1
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.False(t, output.User.IsAdmin)
	assert.True(t, output.User.IsActive)
	// The stored credential is a hash, never the plaintext.
	assert.NotEqual(t, input.Password, output.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(output.User.PasswordHash), []byte(input.Password)))
}

func TestUserService_RegisterAdmin_SetsAdminFlag(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "pw123",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.RegisterAdmin(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.User.IsAdmin)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "pw123",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(&entity.User{ID: 7, Email: input.Email}, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID:           42,
		Email:        "a@x.com",
		PasswordHash: string(hash),
		IsAdmin:      false,
		IsActive:     true,
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, TokenTypeBearer, output.TokenType)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)

	// The issued token must carry the user's identity claims.
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	claims, err := tokenService.ValidateToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.False(t, claims.IsAdmin)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)

	fx.userRepo.On("FindByEmail", ctx, "a@x.com").
		Return(&entity.User{ID: 1, Email: "a@x.com", PasswordHash: string(hash)}, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw124"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "pw123"})

	// Same error as a wrong password; the caller cannot tell which.
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_ProvisionFromPurchase_NewBuyer(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.PurchaseInput{
		TransactionID: "HP-123",
		BuyerEmail:    "buyer@example.com",
		BuyerName:     "Buyer",
	}

	fx.userRepo.On("FindByHotmartTransactionID", ctx, input.TransactionID).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, input.BuyerEmail).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 9
		}).
		Return(nil)

	output, err := fx.service.ProvisionFromPurchase(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, input.TransactionID, output.User.HotmartTransactionID)
	assert.NotEmpty(t, output.User.PasswordHash)
}

func TestUserService_ProvisionFromPurchase_ReplayedTransaction(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 9, Email: "buyer@example.com", HotmartTransactionID: "HP-123"}
	fx.userRepo.On("FindByHotmartTransactionID", ctx, "HP-123").Return(existing, nil)

	output, err := fx.service.ProvisionFromPurchase(ctx, &usecase.PurchaseInput{
		TransactionID: "HP-123",
		BuyerEmail:    "buyer@example.com",
		BuyerName:     "Buyer",
	})

	// Replays are acknowledged without creating anything.
	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, existing.ID, output.User.ID)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_ProvisionFromPurchase_ExistingEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 5, Email: "buyer@example.com", IsActive: false}
	fx.userRepo.On("FindByHotmartTransactionID", ctx, "HP-456").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, "buyer@example.com").Return(existing, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.ProvisionFromPurchase(ctx, &usecase.PurchaseInput{
		TransactionID: "HP-456",
		BuyerEmail:    "buyer@example.com",
		BuyerName:     "Buyer",
	})

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, "HP-456", output.User.HotmartTransactionID)
	assert.True(t, output.User.IsActive)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetByID(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_RegisterLoginGetByID_SameIdentity(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		Name:     "Flow User",
		Email:    "flow@example.com",
		Password: "pw-flow-123",
	}

	var stored *entity.User
	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound).Once()
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.User)
			stored.ID = 21
		}).
		Return(nil)

	registered, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(stored, nil)

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Email: input.Email, Password: input.Password})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, TokenTypeBearer, login.TokenType)

	fx.userRepo.On("FindByID", ctx, int64(21)).Return(stored, nil)

	me, err := fx.service.GetByID(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Email, me.Email)
	assert.False(t, me.IsAdmin)
}
