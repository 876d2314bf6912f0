// Package ident generates unique identifiers for weeks and expenses.
package ident

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generate returns a new collision-resistant identifier: the current
// wall-clock milliseconds joined with a random suffix. Two calls at
// different instants always differ; two calls within the same
// millisecond differ with overwhelming probability.
func Generate() string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return millis + "-" + suffix
}
