//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultChangelogHeader = "## :star: New Features\n\n- Add a feature [#10](https://github.com/example/project/pull/10)\n\n"
	defaultChangelogFooter = "## :heart: Contributors\n\nThank you to all the contributors who worked on this release:\n\n@someone\n"
)

// ChangelogBuilder assembles generated release notes with a fluent interface.
type ChangelogBuilder struct {
	*testkit.BaseBuilder
	header           string
	dependencyLines  []string
	footer           string
	withDependencies bool
	withContributors bool
}

// NewChangelogBuilder creates a changelog with both headings and no bumps.
func NewChangelogBuilder() *ChangelogBuilder {
	return &ChangelogBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		header:           defaultChangelogHeader,
		dependencyLines:  []string{},
		footer:           defaultChangelogFooter,
		withDependencies: true,
		withContributors: true,
	}
}

// WithHeader sets the text before the dependency upgrades heading.
func (b *ChangelogBuilder) WithHeader(header string) *ChangelogBuilder {
	b.header = header
	return b
}

// WithDependencyLine appends a raw line (with terminator) to the dependency section.
func (b *ChangelogBuilder) WithDependencyLine(line string) *ChangelogBuilder {
	b.dependencyLines = append(b.dependencyLines, line)
	return b
}

// WithBump appends the entry built by bump to the dependency section.
func (b *ChangelogBuilder) WithBump(bump *BumpLineBuilder) *ChangelogBuilder {
	return b.WithDependencyLine(bump.BuildLine())
}

// WithoutDependencyHeading drops the dependency upgrades heading.
func (b *ChangelogBuilder) WithoutDependencyHeading() *ChangelogBuilder {
	b.withDependencies = false
	return b
}

// WithoutContributors drops the contributors heading and its section.
func (b *ChangelogBuilder) WithoutContributors() *ChangelogBuilder {
	b.withContributors = false
	return b
}

// Build creates the changelog (satisfies testkit.Builder interface).
func (b *ChangelogBuilder) Build() interface{} {
	return b.BuildContent()
}

// BuildContent renders the changelog text.
func (b *ChangelogBuilder) BuildContent() string {
	var builder strings.Builder
	builder.WriteString(b.header)
	if b.withDependencies {
		builder.WriteString("## :hammer: Dependency Upgrades\n\n")
		for _, line := range b.dependencyLines {
			builder.WriteString(line)
		}
		builder.WriteString("\n")
	}
	if b.withContributors {
		builder.WriteString(b.footer)
	}
	return builder.String()
}

// Reset clears the builder state, allowing it to be reused.
func (b *ChangelogBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.header = defaultChangelogHeader
	b.dependencyLines = []string{}
	b.footer = defaultChangelogFooter
	b.withDependencies = true
	b.withContributors = true
	return b
}

// Clone creates a deep copy of the ChangelogBuilder.
func (b *ChangelogBuilder) Clone() testkit.Builder {
	lines := make([]string, len(b.dependencyLines))
	copy(lines, b.dependencyLines)
	return &ChangelogBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		header:           b.header,
		dependencyLines:  lines,
		footer:           b.footer,
		withDependencies: b.withDependencies,
		withContributors: b.withContributors,
	}
}
