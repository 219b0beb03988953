package utils

import (
	"strings"

	"github.com/goccy/go-json"
)

// Truncate string
func Truncate(s string, length int) string {
	if s == "" {
		return s
	}

	wb := strings.Split(s, "")
	if length > len(wb) {
		length = len(wb)
	}

	out := strings.Join(wb[:length], "")
	if s == out {
		return s
	}
	return out + "..."
}

// JSON marshals input into json
func JSON(input any) ([]byte, error) {
	return json.Marshal(input)
}

// MustJSON marshals input into json and panics on error
func MustJSON(input any) []byte {
	data, err := JSON(input)
	if err != nil {
		panic(err)
	}
	return data
}
