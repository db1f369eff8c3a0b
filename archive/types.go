package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text is a metadata value the search API may return as a string, a number
// or a list of either. Lists are joined with "; ".
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	values, err := decodeValues(data)
	if err != nil {
		return err
	}
	*t = Text(strings.Join(values, "; "))
	return nil
}

// String returns the text value
func (t Text) String() string {
	return string(t)
}

// IsZero reports whether the field was absent or blank
func (t Text) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// List is a metadata value the search API may return either as a single
// string or as a list of strings. It is always normalized to a slice.
type List []string

// UnmarshalJSON implements json.Unmarshaler
func (l *List) UnmarshalJSON(data []byte) error {
	values, err := decodeValues(data)
	if err != nil {
		return err
	}
	*l = values
	return nil
}

// First returns at most n values
func (l List) First(n int) []string {
	if n < 0 || len(l) <= n {
		return l
	}
	return l[:n]
}

// Contains checks for a value, ignoring case
func (l List) Contains(value string) bool {
	for _, v := range l {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// decodeValues accepts null, a scalar, or an array of scalars
func decodeValues(data []byte) ([]string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		values := make([]string, 0, len(raw))
		for _, item := range raw {
			v, ok, err := decodeScalar(item)
			if err != nil {
				return nil, err
			}
			if ok {
				values = append(values, v)
			}
		}
		return values, nil
	}

	v, ok, err := decodeScalar(data)
	if err != nil || !ok {
		return nil, err
	}
	return []string{v}, nil
}

func decodeScalar(data []byte) (string, bool, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return "", false, err
	}

	switch val := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return val, true, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true, nil
	case bool:
		return strconv.FormatBool(val), true, nil
	default:
		return "", false, fmt.Errorf("unsupported metadata value: %s", string(data))
	}
}

// Magazine is a single search document
type Magazine struct {
	Identifier  string `json:"identifier"`
	Title       Text   `json:"title,omitempty"`
	Year        Text   `json:"year,omitempty"`
	Creator     Text   `json:"creator,omitempty"`
	Description Text   `json:"description,omitempty"`
	Collection  List   `json:"collection,omitempty"`
	Subject     List   `json:"subject,omitempty"`
}

// YearNumber returns the publication year as an int, or 0 if the year is
// missing or not numeric. Values like "1975-1976" yield the first year.
func (m *Magazine) YearNumber() int {
	s := strings.TrimSpace(m.Year.String())
	if s == "" {
		return 0
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return year
}

// searchResponse mirrors the advancedsearch.php JSON envelope
type searchResponse struct {
	Response *struct {
		NumFound *int       `json:"numFound"`
		Start    int        `json:"start"`
		Docs     []Magazine `json:"docs"`
	} `json:"response"`
}
