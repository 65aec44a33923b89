// Package taxid normalizes the 11-digit client identifier.
package taxid

// Normalize strips every non-digit rune from s and reports whether exactly
// 11 digits remain. The normalized form is the canonical directory key, so
// "123.456.789-01" and "12345678901" identify the same client.
func Normalize(s string) (string, bool) {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) != 11 {
		return "", false
	}
	return string(digits), true
}
