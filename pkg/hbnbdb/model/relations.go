package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Lister is the read side of a store, enough to compute derived
// collections. Both store backends satisfy it.
type Lister interface {
	All(kinds ...Kind) (map[string]Entity, error)
}

// related scans every stored entity of kind and keeps those matching,
// ordered by name and then by id.
func related[T Entity](l Lister, kind Kind, match func(T) bool) ([]T, error) {
	all, err := l.All(kind)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", kind)
	}

	var matches []T
	for _, e := range all {
		if t, ok := e.(T); ok && match(t) {
			matches = append(matches, t)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		ni, nj := sortName(matches[i]), sortName(matches[j])
		if ni != nj {
			return ni < nj
		}
		return matches[i].GetBase().ID < matches[j].GetBase().ID
	})

	return matches, nil
}

func sortName(e Entity) string {
	if name, ok := e.fieldValues()["name"].(string); ok {
		return name
	}

	return ""
}
