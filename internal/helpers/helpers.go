package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// ParseID parses a path or query identifier.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(StringTrim(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// ParseIDList parses "1,2,3". Empty input yields nil.
func ParseIDList(raw string) ([]int64, error) {
	parts := SplitList(raw)
	if len(parts) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := ParseID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SplitList splits a comma separated value, dropping blanks and duplicates.
func SplitList(raw string) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range strings.Split(raw, ",") {
		p = StringTrim(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
