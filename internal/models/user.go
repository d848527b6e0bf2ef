package models

import (
	"errors"
	"golang.org/x/crypto/bcrypt"
	"strings"
	"time"
)

// User is an admin account allowed to mutate pages.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null;unique" json:"username"`
	Email     string    `json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (u *User) Prepare() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
}

func (u *User) Validate() error {
	if len(u.Username) <= 0 {
		return errors.New("username is required")
	}
	if len(u.Password) <= 0 {
		return errors.New("password is required")
	}
	return nil
}
