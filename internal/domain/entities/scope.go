package entities

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	// projectPattern matches lines such as "+--- Project ':micrometer-core'".
	projectPattern = regexp.MustCompile(`Project '([^']+)'`)

	// dependencyPattern matches tree entries such as
	// "|    +--- org.slf4j:slf4j-api:1.7.36 -> 2.0.9 (*)".
	dependencyPattern = regexp.MustCompile(`^[\s|]*[+\\]---\s+([^:\s]+):([^:\s]+):(\S+)`)
)

// ScopeMarkers holds the tokens that open or close a configuration block in
// the build tool's dependency report. A line "contains" a marker when the
// token appears anywhere in it.
type ScopeMarkers struct {
	Test           []string `yaml:"test"`
	Optional       []string `yaml:"optional"`
	Implementation []string `yaml:"implementation"`
	Runtime        []string `yaml:"runtime"`
}

// DefaultScopeMarkers returns the Gradle configuration names used to detect
// each scope.
func DefaultScopeMarkers() ScopeMarkers {
	return ScopeMarkers{
		Test:           []string{"testCompileClasspath", "testRuntimeClasspath"},
		Optional:       []string{"compileOnly", "optional"},
		Implementation: []string{"implementation", "compileClasspath"},
		Runtime:        []string{"runtimeClasspath"},
	}
}

// ScopeClassification accumulates the coordinates seen in each scope while
// the dependency report is scanned.
type ScopeClassification struct {
	TestOrOptional CoordinateSet
	Implementation CoordinateSet
}

// NewScopeClassification creates an empty classification.
func NewScopeClassification() *ScopeClassification {
	return &ScopeClassification{
		TestOrOptional: NewCoordinateSet(),
		Implementation: NewCoordinateSet(),
	}
}

// Exclusions returns the coordinates only ever seen in test or optional scope.
func (c *ScopeClassification) Exclusions() CoordinateSet {
	return c.TestOrOptional.Minus(c.Implementation)
}

// ParseSubprojects extracts the quoted project paths from the output of the
// project-listing command, in order and without duplicates.
func ParseSubprojects(output string) []string {
	seen := make(map[string]bool)
	projects := make([]string, 0)
	for _, line := range splitOutputLines(output) {
		match := projectPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if seen[match[1]] {
			continue
		}
		seen[match[1]] = true
		projects = append(projects, match[1])
	}
	return projects
}

// ParseDependencyEntry extracts the coordinate of a dependency tree line.
func ParseDependencyEntry(line string) (Coordinate, bool) {
	match := dependencyPattern.FindStringSubmatch(line)
	if match == nil {
		return Coordinate{}, false
	}
	return Coordinate{Group: match[1], Artifact: match[2]}, true
}

// ClassifyDependencyOutput scans a dependency report with three sticky flags.
// Blank lines and runtime markers clear every flag; otherwise each marker
// kind sets its own flag and leaves the others untouched. Dependency entries
// are recorded under every scope whose flag is active at that line.
func ClassifyDependencyOutput(output string, markers ScopeMarkers) *ScopeClassification {
	classification := NewScopeClassification()

	inTest := false
	inOptional := false
	inImplementation := false

	for _, line := range splitOutputLines(output) {
		if strings.TrimSpace(line) == "" || containsAny(line, markers.Runtime) {
			inTest = false
			inOptional = false
			inImplementation = false
			continue
		}

		if containsAny(line, markers.Test) {
			inTest = true
		}
		if containsAny(line, markers.Optional) {
			inOptional = true
		}
		if containsAny(line, markers.Implementation) {
			inImplementation = true
		}

		coordinate, ok := ParseDependencyEntry(line)
		if !ok {
			continue
		}
		if inTest || inOptional {
			classification.TestOrOptional.Add(coordinate.Key())
		}
		if inImplementation {
			classification.Implementation.Add(coordinate.Key())
		}
	}

	return classification
}

func containsAny(line string, tokens []string) bool {
	for _, token := range tokens {
		if token != "" && strings.Contains(line, token) {
			return true
		}
	}
	return false
}

// splitOutputLines splits process output on newlines, dropping "\r". Lines
// of any length are kept.
func splitOutputLines(output string) []string {
	lines := make([]string, 0)
	reader := bufio.NewReader(strings.NewReader(output))
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			return lines
		}
	}
}
