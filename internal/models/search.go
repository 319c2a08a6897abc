package models

// SearchParams is the raw filter bag accepted by the search endpoint. Zero
// values mean "not provided".
type SearchParams struct {
	Type     string `json:"type,omitempty"`
	PriceMin float64 `json:"priceMin,omitempty"`
	PriceMax float64 `json:"priceMax,omitempty"`

	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`

	BedroomsMin      int     `json:"bedroomsMin,omitempty"`
	BedroomsMax      int     `json:"bedroomsMax,omitempty"`
	BathroomsMin     int     `json:"bathroomsMin,omitempty"`
	BathroomsMax     int     `json:"bathroomsMax,omitempty"`
	AreaMin          float64 `json:"areaMin,omitempty"`
	AreaMax          float64 `json:"areaMax,omitempty"`
	ParkingSpacesMin int     `json:"parkingSpacesMin,omitempty"`

	Amenities []string `json:"amenities,omitempty"`

	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`

	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`

	Status string `json:"status,omitempty"`
}

// PropertyQuery is the normalized predicate handed to the storage layer.
// All pagination and vocabulary normalization has already happened.
type PropertyQuery struct {
	Status           string
	PropertyType     string
	PropertyTypes    []string
	PriceMin         float64
	PriceMax         float64
	City             string
	State            string
	BedroomsMin      int
	BedroomsMax      int
	BathroomsMin     int
	BathroomsMax     int
	AreaMin          float64
	AreaMax          float64
	ParkingSpacesMin int
	Amenities        []string
	AmenitiesAny     []string
	Locations        []string
	ExcludeIDs       []string
	OwnerID          string

	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type SearchResult struct {
	Properties    []Property   `json:"properties"`
	Pagination    Pagination   `json:"pagination"`
	Filters       SearchParams `json:"filters"`
	ExecutionTime int64        `json:"executionTime"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
