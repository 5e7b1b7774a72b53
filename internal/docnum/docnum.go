// Package docnum generates the sequential, human-readable document numbers
// used for invoices and purchases (INV-000042 style).
package docnum

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const width = 6

var suffixRe = regexp.MustCompile(`^([A-Z]+-)(\d+)$`)

// Next returns the document number that follows last for the given prefix.
// An empty last starts the sequence at <prefix>000001. When last does not
// match the <prefix><digits> pattern the sequence cannot be continued;
// fallback is true and the returned number is derived from now instead.
// The fallback number does not honor the zero-padded sequential format.
func Next(prefix, last string, now time.Time) (number string, fallback bool) {
	if last == "" {
		return fmt.Sprintf("%s%0*d", prefix, width, 1), false
	}
	m := suffixRe.FindStringSubmatch(last)
	if m == nil || m[1] != prefix {
		return Fallback(prefix, now), true
	}
	n, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Fallback(prefix, now), true
	}
	return fmt.Sprintf("%s%0*d", prefix, width, n+1), false
}

// Fallback builds a timestamp-derived number for when the sequence state is
// unreadable. Millisecond precision keeps collisions unlikely without any
// coordination.
func Fallback(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%d", prefix, now.UnixMilli())
}
