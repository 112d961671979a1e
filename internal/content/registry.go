package content

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Filter field names accepted by BuildQuery.
const (
	FilterStatus          = "status"
	FilterEffectiveStatus = "effectiveStatus"
	FilterCategory        = "category"
	FilterType            = "type"
	FilterPosition        = "position"
	FilterPopular         = "isPopular"
	FilterImportant       = "isImportant"
	FilterRequired        = "isRequired"
	FilterVersion         = "version"
)

// Descriptor is the data-driven description of a content type: its status
// vocabulary, display labels, filterable fields and ordering.
type Descriptor struct {
	Type         Type
	Label        string
	Statuses     []Status
	StatusLabels map[Status]string
	Categories   map[string]string
	BannerTypes  map[string]string
	Positions    map[string]string
	Filters      []string
	SearchFields []string

	less func(a, b *Item) bool
}

var effectiveLabels = map[Status]string{
	StatusDraft:     "Draft",
	StatusScheduled: "Scheduled",
	StatusActive:    "Active",
	StatusEnded:     "Ended",
}

var registry = map[Type]*Descriptor{
	TypeBanner: {
		Type:     TypeBanner,
		Label:    "Banner",
		Statuses: []Status{StatusDraft, StatusActive, StatusScheduled, StatusEnded},
		StatusLabels: map[Status]string{
			StatusDraft:     "Draft",
			StatusActive:    "Active",
			StatusScheduled: "Scheduled",
			StatusEnded:     "Ended",
		},
		BannerTypes: map[string]string{
			"main":  "Main visual",
			"sub":   "Sub banner",
			"popup": "Popup",
			"event": "Event",
		},
		Positions: map[string]string{
			"top":     "Top",
			"middle":  "Middle",
			"bottom":  "Bottom",
			"sidebar": "Sidebar",
		},
		Filters:      []string{FilterStatus, FilterEffectiveStatus, FilterType, FilterPosition},
		SearchFields: []string{"id", "title", "description"},
		less: func(a, b *Item) bool {
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			return newerFirst(a, b)
		},
	},
	TypeFAQ: {
		Type:     TypeFAQ,
		Label:    "FAQ",
		Statuses: []Status{StatusDraft, StatusPublished, StatusArchived},
		StatusLabels: map[Status]string{
			StatusDraft:     "Draft",
			StatusPublished: "Published",
			StatusArchived:  "Archived",
		},
		Categories: map[string]string{
			"reservation":  "Reservation",
			"payment":      "Payment",
			"cancellation": "Cancellation & refund",
			"account":      "Account",
			"lodging":      "Lodging",
			"etc":          "Other",
		},
		Filters:      []string{FilterStatus, FilterCategory, FilterPopular},
		SearchFields: []string{"id", "question", "answer"},
		less: func(a, b *Item) bool {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return newerFirst(a, b)
		},
	},
	TypeNotice: {
		Type:     TypeNotice,
		Label:    "Notice",
		Statuses: []Status{StatusDraft, StatusPublished, StatusScheduled, StatusEnded},
		StatusLabels: map[Status]string{
			StatusDraft:     "Draft",
			StatusPublished: "Published",
			StatusScheduled: "Scheduled",
			StatusEnded:     "Ended",
		},
		Categories: map[string]string{
			"general":     "General",
			"event":       "Event",
			"maintenance": "Maintenance",
			"policy":      "Policy",
		},
		Filters:      []string{FilterStatus, FilterEffectiveStatus, FilterCategory, FilterImportant},
		SearchFields: []string{"id", "title", "content"},
		less: func(a, b *Item) bool {
			if a.IsImportant != b.IsImportant {
				return a.IsImportant
			}
			return newerFirst(a, b)
		},
	},
	TypeTerm: {
		Type:     TypeTerm,
		Label:    "Terms",
		Statuses: []Status{StatusDraft, StatusActive, StatusArchived},
		StatusLabels: map[Status]string{
			StatusDraft:    "Draft",
			StatusActive:   "In effect",
			StatusArchived: "Archived",
		},
		Categories: map[string]string{
			"service":   "Terms of service",
			"privacy":   "Privacy policy",
			"location":  "Location services",
			"marketing": "Marketing consent",
			"payment":   "Electronic payment",
		},
		Filters:      []string{FilterStatus, FilterCategory, FilterRequired, FilterVersion},
		SearchFields: []string{"id", "title", "content"},
		less: func(a, b *Item) bool {
			ae, be := timeOrZero(a.EffectiveDate), timeOrZero(b.EffectiveDate)
			if !ae.Equal(be) {
				return ae.After(be)
			}
			return newerFirst(a, b)
		},
	},
}

// Describe returns the descriptor of t. It panics on an unknown type, which
// can only come from a programming error since Types are parsed at the edge.
func Describe(t Type) *Descriptor {
	d, ok := registry[t]
	if !ok {
		panic("content: no descriptor for type " + string(t))
	}

	return d
}

// StatusLabel returns the display label of a stored or effective status.
func (d *Descriptor) StatusLabel(s Status) string {
	if l, ok := d.StatusLabels[s]; ok {
		return l
	}
	if l, ok := effectiveLabels[s]; ok {
		return l
	}

	return string(s)
}

// CategoryLabel returns the display label of a category code, or the code.
func (d *Descriptor) CategoryLabel(code string) string {
	if l, ok := d.Categories[code]; ok {
		return l
	}

	return code
}

// HasStatus reports whether s belongs to the stored vocabulary.
func (d *Descriptor) HasStatus(s Status) bool {
	for _, st := range d.Statuses {
		if st == s {
			return true
		}
	}

	return false
}

// Filterable reports whether field may be used as a filter.
func (d *Descriptor) Filterable(field string) bool {
	for _, f := range d.Filters {
		if f == field {
			return true
		}
	}

	return false
}

// Sort orders items in place by the type's listing order.
func (d *Descriptor) Sort(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return d.Less(&items[i], &items[j])
	})
}

// Less reports whether a is listed before b. Ties fall back to id so that
// paging over an unchanged collection is stable.
func (d *Descriptor) Less(a, b *Item) bool {
	if d.less(a, b) {
		return true
	}
	if d.less(b, a) {
		return false
	}

	return a.ID < b.ID
}

// searchable returns the texts matched by a search.
func (d *Descriptor) searchable(it *Item) []string {
	switch d.Type {
	case TypeBanner:
		return []string{it.ID, it.Title, it.Description}
	case TypeFAQ:
		return []string{it.ID, it.Question, it.Answer}
	default:
		return []string{it.ID, it.Title, it.Content}
	}
}

// fieldValue renders the value of a filterable field as a string.
func fieldValue(it *Item, field string, now time.Time) string {
	switch field {
	case FilterStatus:
		return string(it.Status)
	case FilterEffectiveStatus:
		return string(ResolveStatus(it, now))
	case FilterCategory:
		return it.Category
	case FilterType:
		return it.BannerType
	case FilterPosition:
		return it.Position
	case FilterPopular:
		return strconv.FormatBool(it.IsPopular)
	case FilterImportant:
		return strconv.FormatBool(it.IsImportant)
	case FilterRequired:
		return strconv.FormatBool(it.IsRequired)
	case FilterVersion:
		return it.Version
	}

	return ""
}

func newerFirst(a, b *Item) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
