// Package util provides small helpers shared across the dbexec library.
package util

import (
	"strconv"
	"strings"
)

// JoinInt64 renders values as a delimiter-joined string.
// A nil or empty slice renders as "".
func JoinInt64(values []int64, sep string) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, sep)
}

// JoinInt32 renders values as a delimiter-joined string. Each value is widened
// to int64 before formatting so no precision or sign is lost.
func JoinInt32(values []int32, sep string) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(parts, sep)
}
