package entities

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// VersionOrderConflict reports a dependency whose string-ordered bounds
// differ from its semantic-version bounds.
type VersionOrderConflict struct {
	Name            string
	Lowest          string
	Highest         string
	SemanticLowest  string
	SemanticHighest string
}

// FindVersionOrderConflicts re-reads the bump lines and compares, for every
// non-excluded dependency, the string minimum/maximum against the semantic
// minimum/maximum. Dependencies with a version that is not valid semver are
// skipped. The consolidated output is never derived from this comparison.
func FindVersionOrderConflicts(lines []string, exclusions CoordinateSet) []VersionOrderConflict {
	froms := make(map[string][]string)
	tos := make(map[string][]string)
	for _, line := range lines {
		bump, ok := ParseBumpLine(line)
		if !ok || exclusions.Contains(bump.Name) {
			continue
		}
		froms[bump.Name] = append(froms[bump.Name], bump.From)
		tos[bump.Name] = append(tos[bump.Name], bump.To)
	}

	conflicts := make([]VersionOrderConflict, 0)
	for name, fromVersions := range froms {
		toVersions := tos[name]
		if !allSemver(fromVersions) || !allSemver(toVersions) {
			continue
		}

		conflict := VersionOrderConflict{
			Name:            name,
			Lowest:          stringMin(fromVersions),
			Highest:         stringMax(toVersions),
			SemanticLowest:  semverMin(fromVersions),
			SemanticHighest: semverMax(toVersions),
		}
		if conflict.Lowest != conflict.SemanticLowest || conflict.Highest != conflict.SemanticHighest {
			conflicts = append(conflicts, conflict)
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Name < conflicts[j].Name
	})
	return conflicts
}

func toSemver(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

func allSemver(versions []string) bool {
	for _, version := range versions {
		if !semver.IsValid(toSemver(version)) {
			return false
		}
	}
	return true
}

func stringMin(versions []string) string {
	result := versions[0]
	for _, version := range versions[1:] {
		if version < result {
			result = version
		}
	}
	return result
}

func stringMax(versions []string) string {
	result := versions[0]
	for _, version := range versions[1:] {
		if version > result {
			result = version
		}
	}
	return result
}

func semverMin(versions []string) string {
	result := versions[0]
	for _, version := range versions[1:] {
		if semver.Compare(toSemver(version), toSemver(result)) < 0 {
			result = version
		}
	}
	return result
}

func semverMax(versions []string) string {
	result := versions[0]
	for _, version := range versions[1:] {
		if semver.Compare(toSemver(version), toSemver(result)) > 0 {
			result = version
		}
	}
	return result
}
