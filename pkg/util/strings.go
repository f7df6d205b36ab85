package util

import "strings"

func TrimString(s string, length int) string {
	if len(s) <= length {
		return s
	}

	return s[:length]
}

// NormalisePlate strips separators and upper-cases a registration plate so
// the same vehicle matches across data streams that format it differently.
func NormalisePlate(plate string) string {
	plate = strings.ReplaceAll(plate, "-", "")
	plate = strings.ReplaceAll(plate, " ", "")

	return strings.ToUpper(plate)
}

func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
