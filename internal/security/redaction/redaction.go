package redaction

import (
	"net/url"
	"regexp"
	"strings"
)

const Placeholder = "[REDACTED]"

var (
	sensitiveValueIndicators = []string{"bearer ", "ghp_", "sk-", "xoxb-", "xoxp-", "-----begin", "api_key", "apikey", "access_token"}

	// urlCredentialsPattern matches scheme://user:password@ inside free text.
	urlCredentialsPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.\-]*://[^/\s:@]+:)([^@\s/]+)@`)
	bearerTokenPattern    = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9\-\._~+/]+=*)`)
)

// LooksLikeSecret reports whether the provided value appears to contain secret material.
func LooksLikeSecret(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}

	lowerValue := strings.ToLower(trimmed)
	for _, indicator := range sensitiveValueIndicators {
		if strings.Contains(lowerValue, indicator) {
			return true
		}
	}

	if len(trimmed) >= 32 && !strings.ContainsAny(trimmed, " \n\t") {
		return true
	}

	return false
}

// RedactURL masks the password of a server URL and any query value that
// looks like a secret, such as a proxy api_key. Values that do not parse are
// returned unchanged.
func RedactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	changed := false
	if parsed.User != nil {
		if _, ok := parsed.User.Password(); ok {
			parsed.User = url.UserPassword(parsed.User.Username(), Placeholder)
			changed = true
		}
	}
	if parsed.RawQuery != "" {
		query := parsed.Query()
		masked := false
		for key, values := range query {
			for i, value := range values {
				if LooksLikeSecret(key) || LooksLikeSecret(value) {
					values[i] = Placeholder
					masked = true
				}
			}
		}
		if masked {
			parsed.RawQuery = query.Encode()
			changed = true
		}
	}
	if !changed {
		return raw
	}
	// Escaping turns the brackets into %5B/%5D; the placeholder reads better raw.
	return strings.ReplaceAll(parsed.String(), url.QueryEscape(Placeholder), Placeholder)
}

// RedactText masks URL passwords and bearer tokens embedded in free text.
func RedactText(text string) string {
	sanitized := urlCredentialsPattern.ReplaceAllString(text, "${1}"+Placeholder+"@")
	return bearerTokenPattern.ReplaceAllString(sanitized, "${1}"+Placeholder)
}
