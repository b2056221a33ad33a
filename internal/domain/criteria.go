package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterCriteria is the complete set of search, filter, and pagination
// parameters driving one listing view. Field-for-field it mirrors the
// shareable query-string keys search, state, city, zip, is_independent
// and page.
type FilterCriteria struct {
	Search          string
	State           string
	City            string
	ZipPrefix       string
	IndependentOnly bool
	Page            int
}

func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		IndependentOnly: true,
		Page:            1,
	}
}

// ParseCriteria decodes a shareable query string. Missing or invalid
// parameters fall back to the defaults.
func ParseCriteria(values url.Values) FilterCriteria {
	criteria := DefaultCriteria()

	criteria.Search = strings.TrimSpace(values.Get("search"))
	criteria.State = strings.ToUpper(strings.TrimSpace(values.Get("state")))
	criteria.City = strings.TrimSpace(values.Get("city"))
	criteria.ZipPrefix = strings.TrimSpace(values.Get("zip"))

	if raw := values.Get("is_independent"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			criteria.IndependentOnly = parsed
		}
	}

	if raw := values.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			criteria.Page = parsed
		}
	}

	return criteria
}

// Values encodes the criteria back into shareable query-string form. An
// empty search term is omitted entirely rather than sent as an empty
// string; the server treats the absent parameter as "no text filter".
func (c FilterCriteria) Values() url.Values {
	values := url.Values{}

	if search := strings.TrimSpace(c.Search); search != "" {
		values.Set("search", search)
	}
	if c.State != "" {
		values.Set("state", c.State)
	}
	if c.City != "" {
		values.Set("city", c.City)
	}
	if c.ZipPrefix != "" {
		values.Set("zip", c.ZipPrefix)
	}
	values.Set("is_independent", strconv.FormatBool(c.IndependentOnly))
	values.Set("page", strconv.Itoa(c.Page))

	return values
}

// ExportValues strips pagination for the bulk export endpoint.
func (c FilterCriteria) ExportValues() url.Values {
	values := c.Values()
	values.Del("page")
	return values
}

// WithPage returns a copy on a different page, leaving filters untouched.
func (c FilterCriteria) WithPage(page int) FilterCriteria {
	c.Page = page
	return c
}
