package rpc

import "time"

type ListRequest struct {
	// Content type: banners, faqs, notices or terms
	Type string `json:"type"`
	// Case-insensitive search text
	Search string `json:"search,omitempty"`
	// Field filters, e.g. {"status": "active"}
	Filters map[string]string `json:"filters,omitempty"`
	// Zero-based page
	Page int `json:"page,omitempty"`
	// Items per page, 10 when omitted
	PageSize int `json:"pageSize,omitempty"`
	// Listing session id; an older request of the same session is superseded
	Session string `json:"session,omitempty"`
}

type Content struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"statusLabel"`
	EffectiveStatus string    `json:"effectiveStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	CreatedBy       string    `json:"createdBy"`

	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description,omitempty"`
	Question      string     `json:"question,omitempty"`
	Answer        string     `json:"answer,omitempty"`
	Content       string     `json:"content,omitempty"`
	Category      string     `json:"category,omitempty"`
	BannerType    string     `json:"bannerType,omitempty"`
	Position      string     `json:"position,omitempty"`
	LinkURL       string     `json:"linkUrl,omitempty"`
	ImagePath     string     `json:"imagePath,omitempty"`
	Priority      int        `json:"priority,omitempty"`
	Order         int        `json:"order,omitempty"`
	Version       string     `json:"version,omitempty"`
	IsPopular     bool       `json:"isPopular,omitempty"`
	IsImportant   bool       `json:"isImportant,omitempty"`
	IsRequired    bool       `json:"isRequired,omitempty"`
	ViewCount     int        `json:"viewCount,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	EffectiveDate *time.Time `json:"effectiveDate,omitempty"`
}

// ContentInput carries the fields of a create or update. Omitted fields keep
// their current value on update.
type ContentInput struct {
	Status        *string    `json:"status,omitempty"`
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Question      *string    `json:"question,omitempty"`
	Answer        *string    `json:"answer,omitempty"`
	Content       *string    `json:"content,omitempty"`
	Category      *string    `json:"category,omitempty"`
	BannerType    *string    `json:"bannerType,omitempty"`
	Position      *string    `json:"position,omitempty"`
	LinkURL       *string    `json:"linkUrl,omitempty"`
	ImagePath     *string    `json:"imagePath,omitempty"`
	Priority      *int       `json:"priority,omitempty"`
	Order         *int       `json:"order,omitempty"`
	Version       *string    `json:"version,omitempty"`
	IsPopular     *bool      `json:"isPopular,omitempty"`
	IsImportant   *bool      `json:"isImportant,omitempty"`
	IsRequired    *bool      `json:"isRequired,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	EffectiveDate *time.Time `json:"effectiveDate,omitempty"`
}

type Page struct {
	Items      []Content `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	TotalPages int       `json:"totalPages"`
}

type Summary struct {
	Type     string         `json:"type"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

type Site struct {
	SiteName        string    `json:"siteName"`
	ContactEmail    string    `json:"contactEmail"`
	SupportPhone    string    `json:"supportPhone"`
	DefaultCurrency string    `json:"defaultCurrency"`
	MaintenanceMode bool      `json:"maintenanceMode"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type SiteInput struct {
	SiteName        *string `json:"siteName,omitempty"`
	ContactEmail    *string `json:"contactEmail,omitempty"`
	SupportPhone    *string `json:"supportPhone,omitempty"`
	DefaultCurrency *string `json:"defaultCurrency,omitempty"`
	MaintenanceMode *bool   `json:"maintenanceMode,omitempty"`
}

type Gateway struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Enabled    bool      `json:"enabled"`
	MerchantID string    `json:"merchantId"`
	APIKey     string    `json:"apiKey"`
	TestMode   bool      `json:"testMode"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type GatewayInput struct {
	Name       *string `json:"name,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
	MerchantID *string `json:"merchantId,omitempty"`
	APIKey     *string `json:"apiKey,omitempty"`
	TestMode   *bool   `json:"testMode,omitempty"`
}
