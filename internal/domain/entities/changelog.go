package entities

import (
	"strings"
)

const (
	defaultDependencyUpgradesHeading = "## :hammer: Dependency Upgrades"
	defaultContributorsHeading       = "## :heart: Contributors"
	lineTerminator                   = "\n"
)

// ChangelogMarkers holds the headings that delimit the dependency section.
// A line matches a marker when, without its terminator, it equals the marker.
type ChangelogMarkers struct {
	DependencyUpgrades string `yaml:"dependency_upgrades"`
	Contributors       string `yaml:"contributors"`
}

// DefaultChangelogMarkers returns the headings written by the release notes
// generator.
func DefaultChangelogMarkers() ChangelogMarkers {
	return ChangelogMarkers{
		DependencyUpgrades: defaultDependencyUpgradesHeading,
		Contributors:       defaultContributorsHeading,
	}
}

// ChangelogSections is the three-way partition of a changelog. Every line
// keeps its original terminator so Header and Footer reproduce the input
// byte for byte.
type ChangelogSections struct {
	Header          []string
	DependencyLines []string
	Footer          []string
}

// SplitChangelog partitions content around the dependency upgrades section.
//
// Behaviour:
//   - Header holds everything up to and including the first dependency
//     upgrades heading, followed by one blank line.
//   - If that heading is missing, Header is the whole content and no
//     dependency lines are collected.
//   - DependencyLines holds the lines after the heading up to (excluding)
//     the contributors heading, or up to EOF.
//   - Footer holds the first contributors heading of the whole content and
//     everything after it, regardless of where the dependency heading is.
func SplitChangelog(content string, markers ChangelogMarkers) ChangelogSections {
	lines := splitKeepTerminators(content)

	sections := ChangelogSections{
		Header:          make([]string, 0, len(lines)),
		DependencyLines: make([]string, 0),
		Footer:          make([]string, 0),
	}

	upgradesIdx := findHeadingIndex(lines, markers.DependencyUpgrades, 0)
	if upgradesIdx < 0 {
		sections.Header = append(sections.Header, lines...)
	} else {
		sections.Header = append(sections.Header, lines[:upgradesIdx+1]...)
		sections.Header = append(sections.Header, lineTerminator)

		endIdx := findHeadingIndex(lines, markers.Contributors, upgradesIdx+1)
		if endIdx < 0 {
			endIdx = len(lines)
		}
		sections.DependencyLines = append(sections.DependencyLines, lines[upgradesIdx+1:endIdx]...)
	}

	if footerIdx := findHeadingIndex(lines, markers.Contributors, 0); footerIdx >= 0 {
		sections.Footer = append(sections.Footer, lines[footerIdx:]...)
	}

	return sections
}

// RenderChangelog writes the header verbatim, one bump line per record, a
// blank line and the footer verbatim.
func RenderChangelog(sections ChangelogSections, records []UpgradeRecord) string {
	var builder strings.Builder
	for _, line := range sections.Header {
		builder.WriteString(line)
	}
	for _, record := range records {
		builder.WriteString(record.BumpLine().String())
		builder.WriteString(lineTerminator)
	}
	builder.WriteString(lineTerminator)
	for _, line := range sections.Footer {
		builder.WriteString(line)
	}
	return builder.String()
}

// findHeadingIndex returns the index of the first line at or after startIdx
// that is exactly heading, or -1 if there is none.
func findHeadingIndex(lines []string, heading string, startIdx int) int {
	if heading == "" {
		return -1
	}
	for i := startIdx; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == heading {
			return i
		}
	}
	return -1
}

// splitKeepTerminators splits content into lines that keep their "\n".
// The last line has no terminator when content does not end with one.
func splitKeepTerminators(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.SplitAfter(content, lineTerminator)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
