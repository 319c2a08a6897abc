package models

// Dashboard aggregates the admin landing page counters. The recent window is
// the last 30 days.
type Dashboard struct {
	Totals        DashboardTotals `json:"totals"`
	Recent        DashboardRecent `json:"recent"`
	Distributions Distributions   `json:"distributions"`
}

type DashboardTotals struct {
	Users      int `json:"users"`
	Properties int `json:"properties"`
	Companies  int `json:"companies"`
	Leads      int `json:"leads"`
}

type DashboardRecent struct {
	Users      int `json:"users"`
	Properties int `json:"properties"`
}

type Distributions struct {
	UsersByRole        []CountByKey `json:"usersByRole"`
	PropertiesByStatus []CountByKey `json:"propertiesByStatus"`
}

type CountByKey struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type AdminUserFilter struct {
	Role     string
	Verified *bool
	Search   string
	Page     int
	Limit    int
}

type AdminPropertyFilter struct {
	Status       string
	PropertyType string
	OwnerID      string
	Search       string
	Page         int
	Limit        int
}
