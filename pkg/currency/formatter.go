package currency

import (
	"math"
	"strconv"
	"strings"
)

// FormatPEN renders an amount in Peruvian soles, e.g. "S/. 1,350".
func FormatPEN(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-S/. " + groupThousands(strconv.FormatInt(-rounded, 10))
	}
	return "S/. " + groupThousands(strconv.FormatInt(rounded, 10))
}

// groupThousands inserts a comma every three digits, working left to right
// from a leading group of one to three digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
