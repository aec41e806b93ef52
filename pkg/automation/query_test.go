package automation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

func TestQuery_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    automation.Query
		expected string
	}{
		{
			name:     "empty",
			query:    automation.Query{},
			expected: "",
		},
		{
			name:     "keeps insertion order",
			query:    automation.Query{}.Add("b", "2").Add("a", "1"),
			expected: "b=2&a=1",
		},
		{
			name:     "spaces and quotes",
			query:    automation.Query{}.Add("$filter", "Name eq 'foo'"),
			expected: "$filter=Name%20eq%20%27foo%27",
		},
		{
			name:     "reserved characters",
			query:    automation.Query{}.Add("$filter", "a&b=c+d"),
			expected: "$filter=a%26b%3Dc%2Bd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.query.Encode())
		})
	}
}

func TestSetQueryDefault(t *testing.T) {
	t.Parallel()

	original := automation.Query{}.Add("$skiptoken", "abc")

	updated := automation.SetQueryDefault(original, "api-version", "2019-06-01")
	assert.Equal(t, "$skiptoken=abc&api-version=2019-06-01", updated.Encode())
	assert.Len(t, original, 1)

	again := automation.SetQueryDefault(updated, "api-version", "2020-01-13-preview")
	assert.Equal(t, updated, again)
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	query := automation.ParseQuery("api-version=2019-06-01&$filter=Name%20eq%20%27foo%27&&flag")

	value, ok := query.Get("$filter")
	assert.True(t, ok)
	assert.Equal(t, "Name eq 'foo'", value)
	assert.True(t, query.Has("flag"))
	assert.False(t, query.Has("missing"))
	assert.Len(t, query, 3)

	lenient := automation.ParseQuery("$skiptoken=50%&bad%zz=1&ok=a%2Bb")

	value, ok = lenient.Get("$skiptoken")
	assert.True(t, ok)
	assert.Equal(t, "50%", value)

	value, ok = lenient.Get("bad%zz")
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	value, _ = lenient.Get("ok")
	assert.Equal(t, "a+b", value)
}

func TestContinuationURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		nextLink string
		expected string
	}{
		{
			name:     "api-version present",
			nextLink: "https://management.azure.com/x?api-version=2015-10-31&$skiptoken=1",
			expected: "https://management.azure.com/x?api-version=2015-10-31&$skiptoken=1",
		},
		{
			name:     "api-version missing",
			nextLink: "https://management.azure.com/x?$skiptoken=1",
			expected: "https://management.azure.com/x?$skiptoken=1&api-version=2019-06-01",
		},
		{
			name:     "no query",
			nextLink: "https://management.azure.com/x",
			expected: "https://management.azure.com/x?api-version=2019-06-01",
		},
		{
			name:     "fragment stays last",
			nextLink: "https://management.azure.com/x?$skiptoken=1#page",
			expected: "https://management.azure.com/x?$skiptoken=1&api-version=2019-06-01#page",
		},
		{
			name:     "fragment without query",
			nextLink: "https://management.azure.com/x#page",
			expected: "https://management.azure.com/x?api-version=2019-06-01#page",
		},
		{
			name:     "undecodable token",
			nextLink: "https://management.azure.com/x?$skiptoken=50%",
			expected: "https://management.azure.com/x?$skiptoken=50%&api-version=2019-06-01",
		},
		{
			name:     "undecodable token with api-version",
			nextLink: "https://management.azure.com/x?$skiptoken=50%&api-version=2015-10-31",
			expected: "https://management.azure.com/x?$skiptoken=50%&api-version=2015-10-31",
		},
		{
			name:     "trailing ampersand",
			nextLink: "https://management.azure.com/x?$skiptoken=1&",
			expected: "https://management.azure.com/x?$skiptoken=1&api-version=2019-06-01",
		},
		{
			name:     "trailing question mark",
			nextLink: "https://management.azure.com/x?",
			expected: "https://management.azure.com/x?api-version=2019-06-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := automation.ContinuationURL(tt.nextLink, "2019-06-01")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := automation.ContinuationURL("://bad", "2019-06-01")
	require.ErrorIs(t, err, automation.ErrInvalidNextLink)
}
