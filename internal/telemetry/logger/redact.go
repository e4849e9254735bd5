package logger

import (
	"fmt"
	"net/url"
	"strings"
)

// Key fragments that mark a value as a credential.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"key",
	"credential",
	"auth",
	"bearer",
	"session_id",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactArgs masks values in key/value pairs before they reach the
// backend. Values under a sensitive key are replaced; URL values have
// their credentials masked.
func redactArgs(args []any) []any {
	if len(args) == 0 {
		return args
	}

	out := make([]any, len(args))
	copy(out, args)

	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}

		switch v := out[i+1].(type) {
		case string:
			out[i+1] = redactValue(key, v)
		case fmt.Stringer:
			out[i+1] = redactValue(key, v.String())
		}
	}
	return out
}

func redactValue(key, value string) string {
	if value == "" {
		return value
	}
	if IsSensitiveKey(key) {
		return redactedValue
	}
	if strings.Contains(value, "://") {
		return RedactURL(value)
	}
	return value
}

// RedactURL masks the password and every credential-like query
// parameter of raw. Values that do not parse as URLs are returned as is.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	changed := false
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "REDACTED")
			changed = true
		}
	}

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			if IsSensitiveKey(k) {
				q.Set(k, "REDACTED")
				changed = true
			}
		}
		if changed {
			u.RawQuery = q.Encode()
		}
	}

	if !changed {
		return raw
	}
	return u.String()
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
