package entities

import (
	"sort"
	"strings"
)

// Coordinate identifies a dependency by group and artifact, without version.
type Coordinate struct {
	Group    string
	Artifact string
}

// Key returns the "group:artifact" form used as set key.
func (c Coordinate) Key() string {
	return c.Group + ":" + c.Artifact
}

// ParseCoordinate splits a "group:artifact" key. It returns false when the
// key does not contain exactly one colon.
func ParseCoordinate(key string) (Coordinate, bool) {
	group, artifact, found := strings.Cut(key, ":")
	if !found || group == "" || artifact == "" || strings.Contains(artifact, ":") {
		return Coordinate{}, false
	}
	return Coordinate{Group: group, Artifact: artifact}, true
}

// CoordinateSet is a set of "group:artifact" keys.
type CoordinateSet map[string]struct{}

// NewCoordinateSet creates a set holding the given keys.
func NewCoordinateSet(keys ...string) CoordinateSet {
	set := make(CoordinateSet, len(keys))
	for _, key := range keys {
		set.Add(key)
	}
	return set
}

// Add inserts a key.
func (s CoordinateSet) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether key is in the set. A nil set contains nothing.
func (s CoordinateSet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s CoordinateSet) Len() int {
	return len(s)
}

// Union returns a new set with the keys of both sets.
func (s CoordinateSet) Union(other CoordinateSet) CoordinateSet {
	result := make(CoordinateSet, len(s)+len(other))
	for key := range s {
		result.Add(key)
	}
	for key := range other {
		result.Add(key)
	}
	return result
}

// Minus returns a new set with the keys of s that are not in other.
func (s CoordinateSet) Minus(other CoordinateSet) CoordinateSet {
	result := make(CoordinateSet, len(s))
	for key := range s {
		if !other.Contains(key) {
			result.Add(key)
		}
	}
	return result
}

// Sorted returns the keys in ascending order.
func (s CoordinateSet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
