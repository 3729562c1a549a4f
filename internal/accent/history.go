package accent

import (
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

const (
	MaxHistory  = 3
	HistoryBase = "base"
)

// HistoryKeys lists every valid history list key: base plus each section and
// group id. Shared ids appear once.
func HistoryKeys() []string {
	seen := map[string]bool{HistoryBase: true}
	keys := []string{HistoryBase}
	for _, s := range sections {
		if !seen[string(s.ID)] {
			seen[string(s.ID)] = true
			keys = append(keys, string(s.ID))
		}
	}
	for _, g := range groups {
		if !seen[string(g.ID)] {
			seen[string(g.ID)] = true
			keys = append(keys, string(g.ID))
		}
	}
	return keys
}

// Record prepends color to history[key], drops any earlier copy of it and
// truncates the list to MaxHistory. The input map is not modified. Invalid or
// absent colors leave the history unchanged.
func Record(history map[string][]string, key, color string) map[string][]string {
	out := make(map[string][]string, len(history)+1)
	for k, v := range history {
		out[k] = append([]string(nil), v...)
	}
	c, ok := colormath.Normalize(color)
	if !ok {
		return out
	}

	list := []string{c}
	for _, prev := range out[key] {
		if prev == c {
			continue
		}
		if len(list) == MaxHistory {
			break
		}
		list = append(list, prev)
	}
	out[key] = list
	return out
}
