// Package identity holds the authenticatable-user machinery so that health
// entities can embed an identity without owning credential or group state.
package identity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator is the capability an entity gains by embedding Identity.
type Authenticator interface {
	SetPassword(password string) error
	CheckPassword(password string) bool
}

// Identity carries the standard identity fields of an authenticatable user.
// It is embedded as a value; group and permission associations are declared
// on the owning entity so that the join tables reference it directly.
type Identity struct {
	Username     string    `json:"username" gorm:"size:150;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:128"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	DateJoined   time.Time `json:"date_joined" gorm:"autoCreateTime"`
}

// SetPassword stores a bcrypt hash of the password.
func (i *Identity) SetPassword(password string) error {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	i.PasswordHash = string(hashedBytes)
	return nil
}

// CheckPassword compares the stored hash with its possible plaintext
// equivalent. Returns true if the password and hash match, false otherwise.
func (i *Identity) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(i.PasswordHash), []byte(password))
	return err == nil
}

// Group defines a named collection of users.
type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:150;unique"`
}

// Permission defines a single grantable permission.
type Permission struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Codename string `json:"codename" gorm:"size:100;unique"`
	Name     string `json:"name" gorm:"size:255"`
}
