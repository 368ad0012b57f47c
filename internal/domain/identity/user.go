package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is the caller identity behind API-key authentication and the owner of
// every scoped record in the system.
type User struct {
	shared.BaseEntity
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	DisplayName  string     `gorm:"type:varchar(200)"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	APIKeyHash   string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a bcrypt-hashed password and a hashed API key
func NewUser(email, displayName, password, apiKey string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if apiKey == "" {
		return nil, shared.NewDomainError("INVALID_API_KEY", "API key cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		APIKeyHash:   HashAPIKey(apiKey),
		Status:       UserStatusActive,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RotateAPIKey replaces the stored API key hash with the hash of a new key
func (u *User) RotateAPIKey(apiKey string) error {
	if apiKey == "" {
		return shared.NewDomainError("INVALID_API_KEY", "API key cannot be empty")
	}
	u.APIKeyHash = HashAPIKey(apiKey)
	u.Touch()
	return nil
}

// Disable deactivates the user account
func (u *User) Disable() {
	u.Status = UserStatusDisabled
	u.Touch()
}

// IsActive returns true if the account may authenticate
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HashAPIKey returns the hex SHA-256 digest used to look up API keys.
// Keys are random high-entropy strings, so a fast hash is sufficient here;
// bcrypt stays reserved for passwords.
func HashAPIKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}
