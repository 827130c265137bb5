package entities

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// bumpLinePattern matches "- Bump <name> from <old> to <new> [<pr>](<link>)".
var bumpLinePattern = regexp.MustCompile(
	`^- Bump (.+?) from (\S+) to (\S+) \[(#[^\]]+)\]\((.+)\)\s*$`,
)

// BumpLine is a single dependency upgrade entry of the changelog.
type BumpLine struct {
	Name        string
	From        string
	To          string
	PullRequest string // includes the leading "#"
	Link        string
}

// ParseBumpLine parses a changelog line (with or without its terminator).
func ParseBumpLine(line string) (BumpLine, bool) {
	match := bumpLinePattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if match == nil {
		return BumpLine{}, false
	}
	return BumpLine{
		Name:        match[1],
		From:        match[2],
		To:          match[3],
		PullRequest: match[4],
		Link:        match[5],
	}, true
}

// String formats the entry in the changelog bump-line format, without a
// line terminator.
func (b BumpLine) String() string {
	return fmt.Sprintf("- Bump %s from %s to %s [%s](%s)", b.Name, b.From, b.To, b.PullRequest, b.Link)
}

// UpgradeRecord is the consolidation of every bump line of one dependency.
type UpgradeRecord struct {
	Name        string
	Lowest      string
	Highest     string
	PullRequest string
	Link        string
}

// Merge folds another bump of the same dependency into the record. Versions
// are compared as plain strings, so "1.10.0" sorts before "1.9.0". The pull
// request reference and link always follow the latest merged bump.
func (r *UpgradeRecord) Merge(bump BumpLine) {
	if bump.From < r.Lowest {
		r.Lowest = bump.From
	}
	if bump.To > r.Highest {
		r.Highest = bump.To
	}
	r.PullRequest = bump.PullRequest
	r.Link = bump.Link
}

// BumpLine converts the record back into a changelog entry.
func (r UpgradeRecord) BumpLine() BumpLine {
	return BumpLine{
		Name:        r.Name,
		From:        r.Lowest,
		To:          r.Highest,
		PullRequest: r.PullRequest,
		Link:        r.Link,
	}
}

// ConsolidateUpgrades parses the dependency section lines, drops bumps whose
// name is excluded, merges duplicates and returns the records sorted by name.
// Lines that are not bump entries are ignored.
func ConsolidateUpgrades(lines []string, exclusions CoordinateSet) []UpgradeRecord {
	records := make(map[string]*UpgradeRecord)

	for _, line := range lines {
		bump, ok := ParseBumpLine(line)
		if !ok {
			continue
		}
		if exclusions.Contains(bump.Name) {
			continue
		}

		existing, found := records[bump.Name]
		if !found {
			records[bump.Name] = &UpgradeRecord{
				Name:        bump.Name,
				Lowest:      bump.From,
				Highest:     bump.To,
				PullRequest: bump.PullRequest,
				Link:        bump.Link,
			}
			continue
		}
		existing.Merge(bump)
	}

	result := make([]UpgradeRecord, 0, len(records))
	for _, record := range records {
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
