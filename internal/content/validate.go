package content

import (
	"net/url"
	"regexp"
	"strings"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// rule checks one aspect of an item and records failures in verr.
type rule func(it *Item, creating bool, verr *ValidationError)

var rules = map[Type][]rule{
	TypeBanner: {
		required("title", func(it *Item) string { return it.Title }),
		required("description", func(it *Item) string { return it.Description }),
		imageOnCreate,
		window,
		linkURL,
		nonNegative("priority", func(it *Item) int { return it.Priority }),
	},
	TypeFAQ: {
		required("question", func(it *Item) string { return it.Question }),
		required("answer", func(it *Item) string { return it.Answer }),
		nonNegative("order", func(it *Item) int { return it.Order }),
	},
	TypeNotice: {
		required("title", func(it *Item) string { return it.Title }),
		required("content", func(it *Item) string { return it.Content }),
		window,
	},
	TypeTerm: {
		required("title", func(it *Item) string { return it.Title }),
		required("content", func(it *Item) string { return it.Content }),
		version,
		effectiveDate,
	},
}

// Validate runs the rule table of the item's type. creating enables the
// rules that only apply to new items. Either every rule passes or a
// *ValidationError listing all failures is returned.
func Validate(it *Item, creating bool) error {
	verr := &ValidationError{}

	if !Describe(it.Type).HasStatus(it.Status) {
		verr.Add("status", "is not a valid status for "+Describe(it.Type).Label)
	}

	for _, r := range rules[it.Type] {
		r(it, creating, verr)
	}

	return verr.OrNil()
}

func required(field string, get func(*Item) string) rule {
	return func(it *Item, _ bool, verr *ValidationError) {
		if strings.TrimSpace(get(it)) == "" {
			verr.Add(field, "is required")
		}
	}
}

func nonNegative(field string, get func(*Item) int) rule {
	return func(it *Item, _ bool, verr *ValidationError) {
		if get(it) < 0 {
			verr.Add(field, "must be zero or greater")
		}
	}
}

func imageOnCreate(it *Item, creating bool, verr *ValidationError) {
	if creating && strings.TrimSpace(it.ImagePath) == "" {
		verr.Add("image", "an image is required")
	}
}

func window(it *Item, _ bool, verr *ValidationError) {
	if it.StartDate == nil {
		verr.Add("startDate", "is required")
	}
	if it.EndDate == nil {
		verr.Add("endDate", "is required")
	}
	if it.StartDate != nil && it.EndDate != nil && it.EndDate.Before(*it.StartDate) {
		verr.Add("endDate", "must not be before the start date")
	}
}

func linkURL(it *Item, _ bool, verr *ValidationError) {
	link := strings.TrimSpace(it.LinkURL)
	if link == "" || strings.HasPrefix(link, "/") {
		return
	}

	u, err := url.Parse(link)
	if err != nil || !u.IsAbs() || u.Host == "" {
		verr.Add("linkUrl", "must be an absolute URL or a path starting with /")
	}
}

func version(it *Item, _ bool, verr *ValidationError) {
	if !versionPattern.MatchString(it.Version) {
		verr.Add("version", "must look like 1.0")
	}
}

func effectiveDate(it *Item, _ bool, verr *ValidationError) {
	if it.EffectiveDate == nil {
		verr.Add("effectiveDate", "is required")
	}
}
