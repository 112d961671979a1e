package content

import (
	"fmt"
	"time"
)

// Type identifies a content collection. The value doubles as the URL segment.
type Type string

const (
	TypeBanner Type = "banners"
	TypeFAQ    Type = "faqs"
	TypeNotice Type = "notices"
	TypeTerm   Type = "terms"
)

// Types lists all content types in display order.
var Types = []Type{TypeBanner, TypeFAQ, TypeNotice, TypeTerm}

// ParseType converts a URL segment into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown content type %q", s)
}

// Windowed reports whether the type derives its status from a start/end window.
func (t Type) Windowed() bool {
	return t == TypeBanner || t == TypeNotice
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusEnded     Status = "ended"
	StatusArchived  Status = "archived"
)

// Item is the canonical copy of a content entry. Fields that do not belong
// to the item's Type are left zero.
type Item struct {
	ID        string
	Type      Type
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string

	// banner, notice, term
	Title string
	// banner
	Description string
	// faq
	Question string
	Answer   string
	// notice (rich text), term (plain text)
	Content string

	Category   string
	BannerType string
	Position   string
	LinkURL    string
	ImagePath  string
	Priority   int
	Order      int
	Version    string

	IsPopular   bool
	IsImportant bool
	IsRequired  bool
	ViewCount   int

	StartDate     *time.Time
	EndDate       *time.Time
	EffectiveDate *time.Time
}

// Fields carries client-supplied values for create and update. A nil field
// is left untouched by Apply.
type Fields struct {
	Status *Status

	Title       *string
	Description *string
	Question    *string
	Answer      *string
	Content     *string

	Category   *string
	BannerType *string
	Position   *string
	LinkURL    *string
	ImagePath  *string
	Priority   *int
	Order      *int
	Version    *string

	IsPopular   *bool
	IsImportant *bool
	IsRequired  *bool

	StartDate     *time.Time
	EndDate       *time.Time
	EffectiveDate *time.Time
}

// Apply copies every non-nil field onto item. Identity and timestamps are
// never touched.
func (f Fields) Apply(item *Item) {
	if f.Status != nil {
		item.Status = *f.Status
	}
	setString(&item.Title, f.Title)
	setString(&item.Description, f.Description)
	setString(&item.Question, f.Question)
	setString(&item.Answer, f.Answer)
	setString(&item.Content, f.Content)
	setString(&item.Category, f.Category)
	setString(&item.BannerType, f.BannerType)
	setString(&item.Position, f.Position)
	setString(&item.LinkURL, f.LinkURL)
	setString(&item.ImagePath, f.ImagePath)
	setString(&item.Version, f.Version)
	setInt(&item.Priority, f.Priority)
	setInt(&item.Order, f.Order)
	setBool(&item.IsPopular, f.IsPopular)
	setBool(&item.IsImportant, f.IsImportant)
	setBool(&item.IsRequired, f.IsRequired)
	setTime(&item.StartDate, f.StartDate)
	setTime(&item.EndDate, f.EndDate)
	setTime(&item.EffectiveDate, f.EffectiveDate)
}

// Listed is an item together with its status as of the listing time.
type Listed struct {
	Item
	Effective Status
}

// Page is one page of a listing.
type Page struct {
	Items      []Listed
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Summary counts a content type's items by effective status.
type Summary struct {
	Type     Type
	Total    int
	ByStatus map[Status]int
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setTime(dst **time.Time, v *time.Time) {
	if v != nil {
		t := v.UTC()
		*dst = &t
	}
}
