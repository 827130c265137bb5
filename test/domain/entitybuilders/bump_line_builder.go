//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// BumpLineBuilder helps create changelog bump entries with a fluent interface.
type BumpLineBuilder struct {
	*testkit.BaseBuilder
	name        string
	from        string
	to          string
	pullRequest string
	link        string
}

// NewBumpLineBuilder creates a new bump line builder with sensible defaults.
func NewBumpLineBuilder() *BumpLineBuilder {
	return &BumpLineBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "org.example:library",
		from:        "1.0.0",
		to:          "1.1.0",
		pullRequest: "#1",
		link:        "https://github.com/example/project/pull/1",
	}
}

// WithName sets the dependency name.
func (b *BumpLineBuilder) WithName(name string) *BumpLineBuilder {
	b.name = name
	return b
}

// WithFrom sets the old version.
func (b *BumpLineBuilder) WithFrom(version string) *BumpLineBuilder {
	b.from = version
	return b
}

// WithTo sets the new version.
func (b *BumpLineBuilder) WithTo(version string) *BumpLineBuilder {
	b.to = version
	return b
}

// WithPullRequest sets the pull request reference and link.
func (b *BumpLineBuilder) WithPullRequest(reference, link string) *BumpLineBuilder {
	b.pullRequest = reference
	b.link = link
	return b
}

// Build creates the bump line (satisfies testkit.Builder interface).
func (b *BumpLineBuilder) Build() interface{} {
	return b.BuildBumpLine()
}

// BuildBumpLine creates the bump line with a concrete return type.
func (b *BumpLineBuilder) BuildBumpLine() entities.BumpLine {
	return entities.BumpLine{
		Name:        b.name,
		From:        b.from,
		To:          b.to,
		PullRequest: b.pullRequest,
		Link:        b.link,
	}
}

// BuildLine creates the changelog text of the entry, with its terminator.
func (b *BumpLineBuilder) BuildLine() string {
	return b.BuildBumpLine().String() + "\n"
}

// Reset clears the builder state, allowing it to be reused.
func (b *BumpLineBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "org.example:library"
	b.from = "1.0.0"
	b.to = "1.1.0"
	b.pullRequest = "#1"
	b.link = "https://github.com/example/project/pull/1"
	return b
}

// Clone creates a deep copy of the BumpLineBuilder.
func (b *BumpLineBuilder) Clone() testkit.Builder {
	return &BumpLineBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		from:        b.from,
		to:          b.to,
		pullRequest: b.pullRequest,
		link:        b.link,
	}
}
