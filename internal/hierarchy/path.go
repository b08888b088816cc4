package hierarchy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrPathNotFound = errors.New("no matching item")
	ErrNoSubmenu    = errors.New("item has no submenu")
)

// SplitPath splits a slash separated drill-down path, dropping empty segments.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}

// ResolvePath maps each segment to an item of the matching level, starting at
// the root list. Exact names win, then case-insensitive names, then the
// closest fuzzy match.
func (t *Table) ResolvePath(segments []string) ([]string, error) {
	resolved := make([]string, 0, len(segments))
	key := RootKey
	for i, segment := range segments {
		items, ok := t.Lookup(key)
		if !ok {
			return resolved, fmt.Errorf("%q: %w", key, ErrNoSubmenu)
		}
		item, ok := matchItem(segment, selectable(items))
		if !ok {
			return resolved, fmt.Errorf("segment %d %q: %w", i+1, segment, ErrPathNotFound)
		}
		resolved = append(resolved, item)
		key = item
	}
	return resolved, nil
}

func selectable(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !IsSeparator(item) {
			out = append(out, item)
		}
	}
	return out
}

func matchItem(segment string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if c == segment {
			return c, true
		}
	}
	for _, c := range candidates {
		if strings.EqualFold(c, segment) {
			return c, true
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(segment, candidates)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
