package htmlreport

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var (
	wsRun      = regexp.MustCompile(`\s+`)
	numPattern = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)
)

// CleanText collapses whitespace runs to a single space and trims the ends.
// Idempotent; the empty string maps to itself.
func CleanText(s string) string {
	return wsRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ParseMeasurement extracts a numeric value from a measurement string as the
// report prints it: "130", "130.000", "130,000", "１３０．５ mm" all work.
// Full-width digits and signs are folded to ASCII and thousands separators
// dropped before the first signed decimal numeral is taken. The second
// return is false when the string holds no numeral.
func ParseMeasurement(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	s = width.Fold.String(CleanText(s))
	s = strings.ReplaceAll(s, ",", "")

	m := numPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatMeasurement renders a length the way the report's own tables do:
// integral values without a decimal point, fractional values with at most
// three decimals and trailing zeros stripped. 40.0 -> "40", 40.12 -> "40.12".
func FormatMeasurement(x float64) string {
	if math.Abs(x-math.Round(x)) < 1e-9 {
		return strconv.Itoa(int(math.Round(x)))
	}
	s := fmt.Sprintf("%.3f", x)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
