package dork

import (
	"strings"

	"github.com/thesavant42/dorkcraft/internal/models"
)

type buildOptions struct {
	rootDomains bool
}

// Option configures Build
type Option func(*buildOptions)

// WithRootDomains cleans up domain answers before formatting: pasted URLs
// become hosts, hosts collapse to their registrable domain and duplicates are
// dropped. Without it domains are formatted exactly as typed.
func WithRootDomains() Option {
	return func(o *buildOptions) {
		o.rootDomains = true
	}
}

// Build turns a query into a dork string. Fields are emitted in the order of
// Fields and joined with single spaces; skipped fields produce nothing.
func Build(q models.Query, opts ...Option) string {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	var parts []string
	for _, f := range Fields {
		raw := FieldValue(q, f.Key)
		if strings.TrimSpace(raw) == "" {
			continue
		}

		var part string
		switch f.Key {
		case FieldExact:
			part = FormatExact(raw)
		case FieldDomain:
			if o.rootDomains {
				raw = normalizeDomainList(raw, true)
			}
			part = FormatField(f.Operator, raw, f.Quoted)
		default:
			part = FormatField(f.Operator, raw, f.Quoted)
		}

		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
