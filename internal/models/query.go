package models

import "strings"

// Query holds the raw answers for one dork. Each field is a comma-separated
// list of literal values; an empty string means the field was skipped.
type Query struct {
	Domain   string
	Title    string
	URL      string
	FileType string
	Text     string
	Exact    string
}

// Values returns the raw field values in build order
func (q Query) Values() []string {
	return []string{q.Domain, q.Title, q.URL, q.FileType, q.Text, q.Exact}
}

// IsEmpty returns true if every field is blank
func (q Query) IsEmpty() bool {
	for _, v := range q.Values() {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Field describes one prompt/operator pair
type Field struct {
	Key      string
	Operator string // empty for the exact-phrase field
	Quoted   bool
	Title    string
	Hint     string
}

// Engine is a search engine the dork can be opened in
type Engine struct {
	Key     string
	Name    string
	Label   string
	BaseURL string
}

// Action is what to do with the finished dork
type Action string

const (
	ActionCopy Action = "1"
	ActionOpen Action = "2"
	ActionBoth Action = "3"
	ActionExit Action = "4"
)

// Copies returns true if the action includes a clipboard copy
func (a Action) Copies() bool {
	return a == ActionCopy || a == ActionBoth
}

// Opens returns true if the action includes opening the browser
func (a Action) Opens() bool {
	return a == ActionOpen || a == ActionBoth
}
