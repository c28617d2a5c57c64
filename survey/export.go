package survey

import (
	"sort"
	"strconv"
)

// ResolveExports lists, per traverse, the stations that appear in any
// equate. Every id in traverseIDs gets an entry.
func ResolveExports(pairs []EquatePair, traverseIDs []string) ExportSet {
	members := make(map[string]map[string]struct{}, len(traverseIDs))
	for _, id := range traverseIDs {
		members[id] = make(map[string]struct{})
	}
	add := func(id StationID) {
		set, ok := members[id.Traverse]
		if !ok {
			set = make(map[string]struct{})
			members[id.Traverse] = set
		}
		set[id.Local] = struct{}{}
	}
	for _, pair := range pairs {
		add(pair.A)
		add(pair.B)
	}

	exports := make(ExportSet, len(members))
	for traverse, set := range members {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			return lessLocalID(ids[i], ids[j])
		})
		exports[traverse] = ids
	}
	return exports
}

// Local ids are point indexes, so order them numerically. Anything that
// isn't a number sorts after the numbers, lexically.
func lessLocalID(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}
	return a < b
}
