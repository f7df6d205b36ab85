package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables snapshots the process environment as a map,
// keeping only variables whose name starts with prefix.
func GetEnvironmentVariables(prefix string) map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, _ := strings.Cut(variable, "=")

		if !strings.HasPrefix(name, prefix) {
			continue
		}

		environmentVariables[name] = value
	}

	return environmentVariables
}
