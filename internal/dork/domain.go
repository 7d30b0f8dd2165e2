package dork

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeDomain cleans up a domain answer.
// Values pasted as URLs lose their scheme, port, query and fragment, keeping
// any path since site: accepts one. Hosts are lower-cased.
// Examples:
//   - "https://www.Example.com/" -> "www.example.com"
//   - "https://example.com:8443/docs?x=1" -> "example.com/docs"
//   - "example.com." -> "example.com"
//
// With root=true a bare host is reduced to its registrable domain using the
// public suffix list, so "playground.bfl.ai" becomes "bfl.ai". Hosts without a
// registrable domain (a bare TLD such as "edu") and values with a path are
// returned unchanged.
func NormalizeDomain(input string, root bool) string {
	value := strings.TrimSpace(input)
	if value == "" {
		return ""
	}

	host, path := value, ""
	if strings.Contains(value, "://") {
		if parsed, err := url.Parse(value); err == nil && parsed.Hostname() != "" {
			host = parsed.Hostname()
			path = strings.TrimSuffix(parsed.EscapedPath(), "/")
		}
	} else if i := strings.Index(value, "/"); i >= 0 {
		host, path = value[:i], strings.TrimSuffix(value[i:], "/")
	}

	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if path != "" {
		return host + path
	}
	if !root {
		return host
	}

	rootDomain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return rootDomain
}

// normalizeDomainList applies NormalizeDomain to each comma-separated entry
// and drops duplicates, keeping the first occurrence.
func normalizeDomainList(raw string, root bool) string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range SplitValues(raw) {
		host := NormalizeDomain(v, root)
		if host == "" || seen[host] {
			continue
		}
		seen[host] = true
		out = append(out, host)
	}
	return strings.Join(out, ",")
}
