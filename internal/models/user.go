package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	RoleUser   = "USER"
	RoleBroker = "BROKER"
	RoleAdmin  = "ADMIN"

	BrokerRoleDirector = "DIRECTOR"
	BrokerRoleAgent    = "AGENT"
)

type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Password        string     `json:"-"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Phone           *string    `json:"phone,omitempty"`
	Avatar          *string    `json:"avatar,omitempty"`
	Role            string     `json:"role"`
	BrokerRole      *string    `json:"brokerRole,omitempty"`
	CRECI           *string    `json:"creci,omitempty"`
	YearsExperience *int       `json:"yearsExperience,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Session is a stored refresh token row.
type Session struct {
	RefreshToken string    `json:"refreshToken"`
	UserID       string    `json:"userId"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type RegisterRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Phone           *string `json:"phone,omitempty"`
	Role            string  `json:"role,omitempty"`
	BrokerRole      string  `json:"brokerRole,omitempty"`
	CRECI           *string `json:"creci,omitempty"`
	YearsExperience *int    `json:"yearsExperience,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
