package normalizer

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// deepCopyMap returns a deep copy of m so the caller's document is never mutated.
func deepCopyMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	copied, ok := deepcopy.Copy(m).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to copy map")
	}
	return copied, nil
}
