// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shapeme/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name                 string
	Email                string
	Password             string
	HotmartTransactionID string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// PurchaseInput carries the fields extracted from an approved purchase
// notification sent by the payment platform.
type PurchaseInput struct {
	TransactionID string
	BuyerEmail    string
	BuyerName     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// PurchaseOutput reports what the webhook provisioning did.
type PurchaseOutput struct {
	User    *entity.User
	Created bool // false when the transaction had already been processed
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a regular account from a self-registration.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// RegisterAdmin creates an account with admin privileges. Callers must
	// already be authenticated as an admin; the gate lives in the delivery layer.
	RegisterAdmin(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetByID loads a single user.
	GetByID(ctx context.Context, id int64) (*entity.User, error)

	// ProvisionFromPurchase creates or reuses an account for an approved
	// external purchase. Processing the same transaction twice is a no-op.
	ProvisionFromPurchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)
}
