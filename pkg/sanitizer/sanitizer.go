package sanitizer

import "strings"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func lower(s string) string {
	return strings.ToLower(s)
}

func NormalizeEmail(email string) string {
	return Pipeline{strings.TrimSpace, lower}.Apply(email)
}

// NormalizeSearch prepares a free-text catalog query for substring matching.
func NormalizeSearch(query string) string {
	return Pipeline{TrimAndNormalize, lower}.Apply(query)
}

// NormalizeFilter lowercases a filter value, mapping "" to the "all" sentinel.
func NormalizeFilter(value, all string) string {
	v := Pipeline{strings.TrimSpace, lower}.Apply(value)
	if v == "" {
		return all
	}
	return v
}
