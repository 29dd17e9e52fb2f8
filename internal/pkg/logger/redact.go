package logger

import "strings"

var secretKeyMarkers = []string{"token", "secret", "password", "api_key", "apikey", "credential"}

// IsSecretKey reports whether a field name looks like it carries a secret.
func IsSecretKey(key string) bool {
	key = strings.ToLower(key)
	for _, m := range secretKeyMarkers {
		if strings.Contains(key, m) {
			return true
		}
	}
	return false
}

// RedactSecret masks a credential, keeping at most the last four characters
// of long values: "sk_live_abcdef123456" → "****3456".
func RedactSecret(val string) string {
	if len(val) <= 8 {
		return "****"
	}
	return "****" + val[len(val)-4:]
}

// RedactEmail masks an email address for safe logging.
// "john.doe@example.com" → "jo***@example.com"
// Short local parts (≤2 chars) are fully masked: "ab@example.com" → "***@example.com"
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}
