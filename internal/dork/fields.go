package dork

import "github.com/thesavant42/dorkcraft/internal/models"

// Field keys, in build order
const (
	FieldDomain   = "domain"
	FieldTitle    = "intitle"
	FieldURL      = "inurl"
	FieldFileType = "filetype"
	FieldText     = "intext"
	FieldExact    = "exact"
)

// Fields is the ordered field table. Prompts are asked and terms are emitted
// in this order.
var Fields = []models.Field{
	{Key: FieldDomain, Operator: "site", Title: "Domain (site:)", Hint: "e.g., example.com or site1.com,site2.com"},
	{Key: FieldTitle, Operator: "intitle", Quoted: true, Title: "Title (intitle:)", Hint: "e.g., login or admin,dashboard"},
	{Key: FieldURL, Operator: "inurl", Title: "URL (inurl:)", Hint: "e.g., admin or /login,/admin"},
	{Key: FieldFileType, Operator: "filetype", Title: "File Type (filetype:)", Hint: "e.g., pdf or pdf,doc,xls"},
	{Key: FieldText, Operator: "intext", Quoted: true, Title: "Content (intext:)", Hint: "e.g., password or confidential,secret"},
	{Key: FieldExact, Title: "Exact Phrase", Hint: `e.g., "user credentials" or phrase1,phrase2`},
}

// FieldValue returns the raw answer stored in q for the given field key
func FieldValue(q models.Query, key string) string {
	switch key {
	case FieldDomain:
		return q.Domain
	case FieldTitle:
		return q.Title
	case FieldURL:
		return q.URL
	case FieldFileType:
		return q.FileType
	case FieldText:
		return q.Text
	case FieldExact:
		return q.Exact
	}
	return ""
}

// SetFieldValue stores an answer in q under the given field key.
// Unknown keys are ignored.
func SetFieldValue(q *models.Query, key, value string) {
	switch key {
	case FieldDomain:
		q.Domain = value
	case FieldTitle:
		q.Title = value
	case FieldURL:
		q.URL = value
	case FieldFileType:
		q.FileType = value
	case FieldText:
		q.Text = value
	case FieldExact:
		q.Exact = value
	}
}
