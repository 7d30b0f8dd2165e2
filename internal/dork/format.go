package dork

import "strings"

// SplitValues splits a comma-separated answer, trims each entry and drops empties
func SplitValues(raw string) []string {
	var values []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// FormatField renders one operator field.
// Examples:
//   - ("site", "example.com", false) -> site:example.com
//   - ("intitle", "login", true) -> intitle:"login"
//   - ("site", "a.com, b.com", false) -> (site:a.com OR site:b.com)
func FormatField(operator, raw string, quoted bool) string {
	return formatValues(operator, SplitValues(raw), quoted)
}

// FormatExact renders the exact-phrase field, which has no operator prefix
func FormatExact(raw string) string {
	return formatValues("", SplitValues(raw), true)
}

func formatValues(operator string, values []string, quoted bool) string {
	if len(values) == 0 {
		return ""
	}

	terms := make([]string, len(values))
	for i, v := range values {
		term := v
		if quoted {
			term = `"` + unquote(v) + `"`
		}
		if operator != "" {
			term = operator + ":" + term
		}
		terms[i] = term
	}

	if len(terms) == 1 {
		return terms[0]
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}

// unquote drops one pair of surrounding double quotes so that an answer typed
// as "user credentials" is not quoted twice
func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return strings.TrimSpace(v[1 : len(v)-1])
	}
	return v
}
