package state

import (
	"strings"

	"github.com/atomicstack/catalog-sync/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// AppendQuery extends the type-ahead query and moves the cursor to the best
// match. Entries are never hidden, so indexes stay stable.
func (d *Dropdown) AppendQuery(text string) bool {
	if text == "" || !d.open {
		return false
	}
	d.Query += text
	d.jump()
	return true
}

// DeleteQueryRune removes the last rune of the query.
func (d *Dropdown) DeleteQueryRune() bool {
	runes := []rune(d.Query)
	if len(runes) == 0 {
		return false
	}
	d.Query = string(runes[:len(runes)-1])
	d.jump()
	return true
}

// ClearQuery drops the query without moving the cursor.
func (d *Dropdown) ClearQuery() bool {
	if d.Query == "" {
		return false
	}
	d.Query = ""
	return true
}

func (d *Dropdown) jump() {
	if strings.TrimSpace(d.Query) == "" {
		return
	}
	if idx := BestMatchIndex(d.Items, d.Query); idx >= 0 {
		d.Cursor = idx
	}
}

// BestMatchIndex ranks labels against query: exact, then prefix, then
// substring, then fuzzy distance. It returns -1 when nothing matches.
func BestMatchIndex(items []menu.Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, menu.Labels(items))
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return -1
	}
	return best.OriginalIndex
}
