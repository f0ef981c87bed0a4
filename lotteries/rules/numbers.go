package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// normalize2 reduces a raw selection to the two-digit playing field:
// mod 100, zero-padded.
func normalize2(raw string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return "", false
	}
	return fmt.Sprintf("%02d", n%100), true
}

// DeriveKey returns the combination key for a selection. A selection that
// already carries dashes is a provided key and is used as-is; anything else
// is split on commas/whitespace and joined as zero-padded numbers. Bet
// placement uses the same derivation so keys match at settlement time.
func DeriveKey(selection string) string {
	selection = strings.TrimSpace(selection)
	if strings.Contains(selection, "-") {
		return selection
	}

	parts := strings.FieldsFunc(selection, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	padded := make([]string, 0, len(parts))
	for _, p := range parts {
		if n, ok := normalize2(p); ok {
			padded = append(padded, n)
		} else {
			padded = append(padded, p)
		}
	}
	return strings.Join(padded, "-")
}
