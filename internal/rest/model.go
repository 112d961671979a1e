package rest

import "time"

// Content is a banner, FAQ, notice or term. Fields that do not belong to
// the item's type are omitted.
type Content struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"statusLabel"`
	EffectiveStatus string    `json:"effectiveStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	CreatedBy       string    `json:"createdBy"`

	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Question      *string `json:"question,omitempty"`
	Answer        *string `json:"answer,omitempty"`
	Content       *string `json:"content,omitempty"`
	Category      *string `json:"category,omitempty"`
	CategoryLabel *string `json:"categoryLabel,omitempty"`
	Type          *string `json:"type,omitempty"`
	Position      *string `json:"position,omitempty"`
	LinkURL       *string `json:"linkUrl,omitempty"`
	ImagePath     *string `json:"imagePath,omitempty"`
	Priority      *int    `json:"priority,omitempty"`
	Order         *int    `json:"order,omitempty"`
	Version       *string `json:"version,omitempty"`
	IsPopular     *bool   `json:"isPopular,omitempty"`
	IsImportant   *bool   `json:"isImportant,omitempty"`
	IsRequired    *bool   `json:"isRequired,omitempty"`
	ViewCount     *int    `json:"viewCount,omitempty"`

	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	EffectiveDate *time.Time `json:"effectiveDate,omitempty"`
}

// ContentInput is the body of create and update requests. Omitted fields
// keep their current value on update.
type ContentInput struct {
	Status *string `json:"status"`

	Title       *string `json:"title"`
	Description *string `json:"description"`
	Question    *string `json:"question"`
	Answer      *string `json:"answer"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	Type        *string `json:"type"`
	Position    *string `json:"position"`
	LinkURL     *string `json:"linkUrl"`
	ImagePath   *string `json:"imagePath"`
	Priority    *int    `json:"priority"`
	Order       *int    `json:"order"`
	Version     *string `json:"version"`
	IsPopular   *bool   `json:"isPopular"`
	IsImportant *bool   `json:"isImportant"`
	IsRequired  *bool   `json:"isRequired"`

	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	EffectiveDate *time.Time `json:"effectiveDate"`
}

// ListRequest holds the query parameters of a listing. Boolean filters are
// kept as text and validated by the query builder.
type ListRequest struct {
	Page            int
	Limit           int
	Search          string
	Status          string
	EffectiveStatus string `urlstruct:"effectiveStatus"`
	Category        string
	Type            string
	Position        string
	Popular         string
	Important       string
	Required        string
	Version         string
}

type ListResponse struct {
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

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Meta describes a content type for building list screens.
type Meta struct {
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Statuses    []Option `json:"statuses"`
	Categories  []Option `json:"categories,omitempty"`
	BannerTypes []Option `json:"bannerTypes,omitempty"`
	Positions   []Option `json:"positions,omitempty"`
	Filters     []string `json:"filters"`
}

type TermPreview struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Version string `json:"version"`
	HTML    string `json:"html"`
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
	SiteName        *string `json:"siteName"`
	ContactEmail    *string `json:"contactEmail"`
	SupportPhone    *string `json:"supportPhone"`
	DefaultCurrency *string `json:"defaultCurrency"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
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
	Name       *string `json:"name"`
	Enabled    *bool   `json:"enabled"`
	MerchantID *string `json:"merchantId"`
	APIKey     *string `json:"apiKey"`
	TestMode   *bool   `json:"testMode"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
