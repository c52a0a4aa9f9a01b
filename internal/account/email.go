package account

import "strings"

// NormalizeEmail trims email and lower-cases its domain part. The local part
// is kept as is since it may be case sensitive.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
