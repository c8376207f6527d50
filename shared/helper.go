package shared

import (
	"fmt"
	"slices"
)

func sortedKeys(keys []string) []string {
	slices.Sort(keys)

	return keys
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
