// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record for the catalog. Accounts are created through
// self-registration, admin provisioning or the purchase webhook, and are
// never hard-deleted.
type User struct {
	ID                   int64     `json:"id"`
	Email                string    `json:"email"`   // Unique login identifier.
	Name                 string    `json:"name"`    // Display name.
	PasswordHash         string    `json:"-"`       // bcrypt hash, never serialized.
	IsAdmin              bool      `json:"is_admin"`
	IsActive             bool      `json:"is_active"`
	HotmartTransactionID string    `json:"hotmart_transaction_id,omitempty"` // External payment transaction, set by the purchase webhook.
	CreatedAt            time.Time `json:"created_at"`
}
