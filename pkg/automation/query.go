package automation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
)

// QueryPair is one decoded query parameter.
type QueryPair struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order, which the service's generated clients rely on for
// reproducible URLs.
type Query []QueryPair

// Add appends a parameter and returns the extended query.
func (q Query) Add(key, value string) Query {
	return append(q, QueryPair{Key: key, Value: value})
}

// Get returns the first value for key.
func (q Query) Get(key string) (string, bool) {
	for _, pair := range q {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Has reports whether key is present.
func (q Query) Has(key string) bool {
	_, ok := q.Get(key)

	return ok
}

// Encode renders the query in order. Spaces are encoded as %20.
func (q Query) Encode() string {
	var builder strings.Builder

	for i, pair := range q {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(EscapeQueryKey(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(EscapeQueryValue(pair.Value))
	}

	return builder.String()
}

// SetQueryDefault returns q with key=value appended when key is absent.
// An existing value is never replaced or duplicated.
func SetQueryDefault(q Query, key, value string) Query {
	if q.Has(key) {
		return q
	}

	out := make(Query, len(q), len(q)+1)
	copy(out, q)

	return out.Add(key, value)
}

// ParseQuery decodes a raw query string preserving order. Keys or values
// that are not valid escapes, such as a stray "%" in an opaque token, are
// kept as written.
func ParseQuery(raw string) Query {
	var query Query

	for part := range strings.SplitSeq(raw, "&") {
		if part == "" {
			continue
		}

		key, value, _ := strings.Cut(part, "=")

		query = query.Add(unescapeLenient(key), unescapeLenient(value))
	}

	return query
}

func unescapeLenient(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}

	return decoded
}

// EscapeQueryValue escapes a query value, using %20 for spaces.
func EscapeQueryValue(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// EscapeQueryKey escapes a key but leaves the OData "$" prefix readable.
func EscapeQueryKey(key string) string {
	return strings.ReplaceAll(EscapeQueryValue(key), "%24", "$")
}

// ContinuationURL prepares a nextLink for sending: the link is used verbatim
// and api-version is appended to its query only when absent. A fragment stays
// at the end.
func ContinuationURL(nextLink, apiVersion string) (string, error) {
	parsed, err := url.Parse(nextLink)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidNextLink, err)
	}

	if ParseQuery(parsed.RawQuery).Has(constants.QueryAPIVersion) {
		return nextLink, nil
	}

	rawQuery := strings.TrimSuffix(parsed.RawQuery, "&")
	if rawQuery != "" {
		rawQuery += "&"
	}

	parsed.RawQuery = rawQuery + Query{}.Add(constants.QueryAPIVersion, apiVersion).Encode()
	parsed.ForceQuery = false

	return parsed.String(), nil
}
