package models

import (
	"time"
)

const CompanyTypeBroker = "BROKER"

type Company struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	LicenseNumber string          `json:"licenseNumber"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	City          *string         `json:"city,omitempty"`
	State         *string         `json:"state,omitempty"`
	ZipCode       *string         `json:"zipCode,omitempty"`
	Website       *string         `json:"website,omitempty"`
	Logo          *string         `json:"logo,omitempty"`
	Description   *string         `json:"description,omitempty"`
	IsVerified    bool            `json:"isVerified"`
	Members       []CompanyMember `json:"members,omitempty"`
	Properties    []Property      `json:"properties,omitempty"`
	PropertyCount int             `json:"propertyCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

type CompanyMember struct {
	UserID string       `json:"userId"`
	Role   string       `json:"role"`
	User   OwnerSummary `json:"user"`
}

type CreateCompanyRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	LicenseNumber string  `json:"licenseNumber"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	ZipCode       *string `json:"zipCode,omitempty"`
	Website       *string `json:"website,omitempty"`
	Logo          *string `json:"logo,omitempty"`
	Description   *string `json:"description,omitempty"`
}

type UpdateCompanyRequest struct {
	Name          *string `json:"name,omitempty"`
	LicenseNumber *string `json:"licenseNumber,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	ZipCode       *string `json:"zipCode,omitempty"`
	Website       *string `json:"website,omitempty"`
	Logo          *string `json:"logo,omitempty"`
	Description   *string `json:"description,omitempty"`
}

type CompanyListFilter struct {
	Type     string
	Verified *bool
	Search   string
	Page     int
	Limit    int
}
