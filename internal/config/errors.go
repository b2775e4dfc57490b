package config

import (
	"fmt"
	"strings"
)

// MissingEnvError is returned when required configuration is missing.
type MissingEnvError struct {
	Variables []string
}

func (e MissingEnvError) Error() string {
	if len(e.Variables) == 0 {
		return "server credentials not configured"
	}
	return fmt.Sprintf("server credentials not configured (missing %s)", strings.Join(e.Variables, ", "))
}
