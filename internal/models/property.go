package models

import (
	"time"
)

const (
	PropertyTypeHouse      = "HOUSE"
	PropertyTypeApartment  = "APARTMENT"
	PropertyTypeLand       = "LAND"
	PropertyTypeCommercial = "COMMERCIAL"
	PropertyTypeCondo      = "CONDO"

	PriceTypeSale        = "SALE"
	PriceTypeRentMonthly = "RENT_MONTHLY"
	PriceTypeRentDaily   = "RENT_DAILY"

	StatusAvailable = "AVAILABLE"
	StatusRented    = "RENTED"
	StatusSold      = "SOLD"
	StatusDraft     = "DRAFT"
)

type Property struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	PropertyType   string          `json:"propertyType"`
	Price          float64         `json:"price"`
	PriceType      string          `json:"priceType"`
	Bedrooms       int             `json:"bedrooms"`
	Bathrooms      int             `json:"bathrooms"`
	Area           float64         `json:"area"`
	ParkingSpaces  int             `json:"parkingSpaces"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zipCode"`
	Country        string          `json:"country"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	Images         []string        `json:"images"`
	VirtualTourURL *string         `json:"virtualTourUrl,omitempty"`
	Amenities      []string        `json:"amenities"`
	Status         string          `json:"status"`
	Views          int             `json:"views"`
	Favorites      int             `json:"favorites"`
	OwnerID        string          `json:"ownerId"`
	CompanyID      *string         `json:"companyId,omitempty"`
	Owner          *OwnerSummary   `json:"owner,omitempty"`
	Company        *CompanySummary `json:"company,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
}

// OwnerSummary is the shallow owner projection attached to listings.
// Credentials never travel through it.
type OwnerSummary struct {
	ID        string  `json:"id,omitempty"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role,omitempty"`
}

type CompanySummary struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Website *string `json:"website,omitempty"`
}

type CreatePropertyRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	PropertyType   string   `json:"propertyType"`
	Price          float64  `json:"price"`
	PriceType      string   `json:"priceType"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	Area           float64  `json:"area"`
	ParkingSpaces  int      `json:"parkingSpaces"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	ZipCode        string   `json:"zipCode"`
	Country        string   `json:"country"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Images         []string `json:"images"`
	VirtualTourURL *string  `json:"virtualTourUrl,omitempty"`
	Amenities      []string `json:"amenities"`
	CompanyID      *string  `json:"companyId,omitempty"`
}

// UpdatePropertyRequest carries a partial update; nil fields are untouched.
type UpdatePropertyRequest struct {
	Title          *string   `json:"title,omitempty"`
	Description    *string   `json:"description,omitempty"`
	PropertyType   *string   `json:"propertyType,omitempty"`
	Price          *float64  `json:"price,omitempty"`
	PriceType      *string   `json:"priceType,omitempty"`
	Bedrooms       *int      `json:"bedrooms,omitempty"`
	Bathrooms      *int      `json:"bathrooms,omitempty"`
	Area           *float64  `json:"area,omitempty"`
	ParkingSpaces  *int      `json:"parkingSpaces,omitempty"`
	Address        *string   `json:"address,omitempty"`
	City           *string   `json:"city,omitempty"`
	State          *string   `json:"state,omitempty"`
	ZipCode        *string   `json:"zipCode,omitempty"`
	Country        *string   `json:"country,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Images         *[]string `json:"images,omitempty"`
	VirtualTourURL *string   `json:"virtualTourUrl,omitempty"`
	Amenities      *[]string `json:"amenities,omitempty"`
	CompanyID      *string   `json:"companyId,omitempty"`
}

type PropertyView struct {
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId"`
	ViewedAt   time.Time `json:"viewedAt"`
}

type Favorite struct {
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Lead struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserID     *string   `json:"userId,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusAvailable, StatusRented, StatusSold, StatusDraft:
		return true
	}
	return false
}
