package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteriaDefaults(t *testing.T) {
	t.Parallel()

	criteria := ParseCriteria(url.Values{})
	assert.Equal(t, DefaultCriteria(), criteria)
	assert.True(t, criteria.IndependentOnly)
	assert.Equal(t, 1, criteria.Page)
}

func TestParseCriteriaInvalidValuesFallBack(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"page":           {"zero"},
		"is_independent": {"maybe"},
	}
	criteria := ParseCriteria(values)
	assert.Equal(t, 1, criteria.Page)
	assert.True(t, criteria.IndependentOnly)

	values = url.Values{"page": {"-3"}}
	assert.Equal(t, 1, ParseCriteria(values).Page)
}

func TestParseCriteriaNormalizesFields(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"search":         {"  corner drug  "},
		"state":          {" ca "},
		"city":           {" Fresno "},
		"zip":            {" 937 "},
		"is_independent": {"false"},
		"page":           {"3"},
	}
	criteria := ParseCriteria(values)

	assert.Equal(t, "corner drug", criteria.Search)
	assert.Equal(t, "CA", criteria.State)
	assert.Equal(t, "Fresno", criteria.City)
	assert.Equal(t, "937", criteria.ZipPrefix)
	assert.False(t, criteria.IndependentOnly)
	assert.Equal(t, 3, criteria.Page)
}

func TestCriteriaValuesRoundTrip(t *testing.T) {
	t.Parallel()

	criteria := FilterCriteria{
		Search:          "main street",
		State:           "NY",
		City:            "Albany",
		ZipPrefix:       "122",
		IndependentOnly: false,
		Page:            7,
	}

	parsed := ParseCriteria(criteria.Values())
	assert.Equal(t, criteria, parsed)
}

func TestCriteriaValuesOmitEmptySearch(t *testing.T) {
	t.Parallel()

	criteria := DefaultCriteria()
	criteria.Search = "   "
	values := criteria.Values()

	_, present := values["search"]
	assert.False(t, present)
	assert.Equal(t, "true", values.Get("is_independent"))
	assert.Equal(t, "1", values.Get("page"))
}

func TestCriteriaExportValuesStripPagination(t *testing.T) {
	t.Parallel()

	criteria := DefaultCriteria().WithPage(9)
	criteria.Search = "rx"

	values := criteria.ExportValues()
	_, present := values["page"]
	assert.False(t, present)
	assert.Equal(t, "rx", values.Get("search"))
}

func TestResultPageLastPage(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, ResultPage{TotalPages: 0}.LastPage())
	require.Equal(t, 1, ResultPage{TotalPages: 1}.LastPage())
	require.Equal(t, 5, ResultPage{TotalPages: 5}.LastPage())
}
