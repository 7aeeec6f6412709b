package sidebar

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ytget/launcher/internal/model"
)

// Match is a search hit together with its enclosing group (uuid.Nil for the
// top level)
type Match struct {
	Item  model.Item
	Group uuid.UUID
}

// Search returns the items whose names match query, in tree order. Groups
// and instances are matched alike. Fuzzy matching is tried first; when it
// yields nothing a plain case-insensitive substring match is used.
func (s *Store) Search(query string) []Match {
	candidates := s.flatten()

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return candidates
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Item.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		hits := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			hits[rank.OriginalIndex] = struct{}{}
		}
		matches := make([]Match, 0, len(hits))
		for i, c := range candidates {
			if _, ok := hits[i]; ok {
				matches = append(matches, c)
			}
		}
		return matches
	}

	lower := strings.ToLower(trimmed)
	var matches []Match
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Item.Name), lower) {
			matches = append(matches, c)
		}
	}
	return matches
}

// flatten lists every item in display order: each top-level item followed by
// its children
func (s *Store) flatten() []Match {
	out := make([]Match, 0, s.Count())
	for _, item := range s.items {
		out = append(out, Match{Item: item.Clone()})
		for _, child := range item.Children {
			out = append(out, Match{Item: child.Clone(), Group: item.ID})
		}
	}
	return out
}
