package handler

const maskedValue = "***"

// RedactToken masks an API token for log and display output.
// Long tokens keep their last four characters so operators can tell
// credentials apart; short ones are masked entirely.
func RedactToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return maskedValue
	}
	return maskedValue + token[len(token)-4:]
}
