package store

import "github.com/jonathan/resume-builder/internal/types"

// keyed is satisfied by every identified entry value type.
type keyed interface {
	EntryID() string
}

// replaceEntry overwrites the entry matching id with repl, preserving the
// existing identifier. Reports whether a match was found.
func replaceEntry[T keyed, PT interface {
	*T
	AssignID(string)
}](list []T, id string, repl T) bool {
	for i := range list {
		if list[i].EntryID() == id {
			PT(&repl).AssignID(id)
			list[i] = repl
			return true
		}
	}
	return false
}

// removeEntry filters out the entry matching id, keeping relative order.
func removeEntry[T keyed](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if e.EntryID() != id {
			out = append(out, e)
		}
	}
	return out
}

// reorderByID rebuilds the list in the order given by ids. The ids must be an
// exact permutation of the list's identifiers; duplicates and strays are
// reported, never silently dropped.
func reorderByID[T keyed](c types.Collection, list []T, ids []string) ([]T, error) {
	index := make(map[string]int, len(list))
	for i, e := range list {
		index[e.EntryID()] = i
	}

	used := make(map[string]bool, len(ids))
	out := make([]T, 0, len(list))
	var unknown []string
	for _, id := range ids {
		i, ok := index[id]
		if !ok || used[id] {
			unknown = append(unknown, id)
			continue
		}
		used[id] = true
		out = append(out, list[i])
	}

	var missing []string
	for _, e := range list {
		if !used[e.EntryID()] {
			missing = append(missing, e.EntryID())
		}
	}

	if len(unknown) > 0 || len(missing) > 0 {
		return nil, &NotPermutationError{Collection: string(c), Missing: missing, Unknown: unknown}
	}
	return out, nil
}
