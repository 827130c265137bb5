//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changelogdeps/internal/domain/commands"
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/test/domain/commanddoubles"
	"github.com/rios0rios0/changelogdeps/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/changelogdeps/test/infrastructure/repositorydoubles"
)

func TestConsolidateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should write the consolidated changelog next to the input", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewChangelogBuilder().
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("foo").WithFrom("1.0.0").WithTo("1.2.0").
				WithPullRequest("#1", "urlA")).
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("org.junit:junit-bom")).
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("foo").WithFrom("1.1.0").WithTo("1.3.0").
				WithPullRequest("#2", "urlB")).
			BuildContent()
		expected := entitybuilders.NewChangelogBuilder().
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("foo").WithFrom("1.0.0").WithTo("1.3.0").
				WithPullRequest("#2", "urlB")).
			BuildContent()

		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{"/work/changelog.md": content})
		classify := &commanddoubles.StubClassifyCommand{
			Exclusions: entities.NewCoordinateSet("org.junit:junit-bom"),
		}
		cmd := commands.NewConsolidateCommand(classify, changelog, &doubles.StubWorkspaceRepository{})

		// when
		err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), commands.ConsolidateOptions{
			WorkDir: "/work",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/changelog-output.md"}, changelog.Written)
		assert.Equal(t, expected, changelog.Files["/work/changelog-output.md"])
		assert.Equal(t, content, changelog.Files["/work/changelog.md"])
		assert.Equal(t, 1, classify.ExecuteCallCount)
		assert.Equal(t, "/work", classify.LastOpts.WorkDir)
	})

	t.Run("should not modify the caller's settings", func(t *testing.T) {
		t.Parallel()

		// given
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{
			"/work/changelog.md": entitybuilders.NewChangelogBuilder().BuildContent(),
		})
		cmd := commands.NewConsolidateCommand(
			&commanddoubles.StubClassifyCommand{}, changelog, &doubles.StubWorkspaceRepository{},
		)
		settings := entities.NewDefaultSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ConsolidateOptions{WorkDir: "/work"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "changelog.md", settings.Input)
		assert.Equal(t, "changelog-output.md", settings.Output)
	})

	t.Run("should print instead of writing on dry run", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewChangelogBuilder().
			WithBump(entitybuilders.NewBumpLineBuilder()).
			BuildContent()
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{"changelog.md": content})
		cmd := commands.NewConsolidateCommand(
			&commanddoubles.StubClassifyCommand{}, changelog, &doubles.StubWorkspaceRepository{},
		)
		var stdout bytes.Buffer

		// when
		err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), commands.ConsolidateOptions{
			DryRun: true,
			Stdout: &stdout,
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, changelog.Written)
		assert.Equal(t, content, stdout.String())
	})

	t.Run("should skip the classifier and apply configured exclusions", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewChangelogBuilder().
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("org.example:bom")).
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("org.example:lib")).
			BuildContent()
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{"changelog.md": content})
		classify := &commanddoubles.StubClassifyCommand{}
		cmd := commands.NewConsolidateCommand(classify, changelog, &doubles.StubWorkspaceRepository{})
		settings := entities.NewDefaultSettings()
		settings.Exclude = []string{"org.example:bom"}

		// when
		err := cmd.Execute(context.Background(), settings, commands.ConsolidateOptions{SkipClassification: true})

		// then
		require.NoError(t, err)
		assert.Zero(t, classify.ExecuteCallCount)
		output := changelog.Files["changelog-output.md"]
		assert.NotContains(t, output, "org.example:bom")
		assert.Contains(t, output, "- Bump org.example:lib from 1.0.0 to 1.1.0")
	})

	t.Run("should drop bumps whose configured exclusion is not a coordinate", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewChangelogBuilder().
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("gradle wrapper").WithFrom("8.5").WithTo("8.6")).
			WithBump(entitybuilders.NewBumpLineBuilder().WithName("org.example:lib")).
			BuildContent()
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{"changelog.md": content})
		cmd := commands.NewConsolidateCommand(
			&commanddoubles.StubClassifyCommand{}, changelog, &doubles.StubWorkspaceRepository{},
		)
		settings := entities.NewDefaultSettings()
		settings.Exclude = []string{"gradle wrapper"}

		// when
		err := cmd.Execute(context.Background(), settings, commands.ConsolidateOptions{SkipClassification: true})

		// then
		require.NoError(t, err)
		output := changelog.Files["changelog-output.md"]
		assert.NotContains(t, output, "gradle wrapper")
		assert.Contains(t, output, "- Bump org.example:lib from 1.0.0 to 1.1.0")
	})

	t.Run("should resolve paths against the repository root", func(t *testing.T) {
		t.Parallel()

		// given
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{
			"/repo/changelog.md": entitybuilders.NewChangelogBuilder().BuildContent(),
		})
		classify := &commanddoubles.StubClassifyCommand{}
		workspace := &doubles.StubWorkspaceRepository{RootDir: "/repo"}
		cmd := commands.NewConsolidateCommand(classify, changelog, workspace)

		// when
		err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), commands.ConsolidateOptions{
			WorkDir:        "/repo/docs",
			DetectRepoRoot: true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/changelog-output.md"}, changelog.Written)
		assert.Equal(t, "/repo", classify.LastOpts.WorkDir)
		assert.False(t, classify.LastOpts.DetectRepoRoot)
	})

	t.Run("should fail with ErrChangelogUnreadable when the input is missing", func(t *testing.T) {
		t.Parallel()

		// given
		changelog := doubles.NewInMemoryChangelogRepository(nil)
		cmd := commands.NewConsolidateCommand(
			&commanddoubles.StubClassifyCommand{}, changelog, &doubles.StubWorkspaceRepository{},
		)

		// when
		err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), commands.ConsolidateOptions{})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrChangelogUnreadable)
		assert.Empty(t, changelog.Written)
	})

	t.Run("should stop before reading when classification fails", func(t *testing.T) {
		t.Parallel()

		// given
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{
			"changelog.md": entitybuilders.NewChangelogBuilder().BuildContent(),
		})
		classify := &commanddoubles.StubClassifyCommand{ExecuteErr: entities.ErrBuildToolUnavailable}
		cmd := commands.NewConsolidateCommand(classify, changelog, &doubles.StubWorkspaceRepository{})

		// when
		err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), commands.ConsolidateOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrBuildToolUnavailable)
		assert.Empty(t, changelog.Written)
	})

	t.Run("should wrap write failures", func(t *testing.T) {
		t.Parallel()

		// given
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{
			"changelog.md": entitybuilders.NewChangelogBuilder().BuildContent(),
		})
		changelog.WriteErr = errors.New("read-only file system")
		cmd := commands.NewConsolidateCommand(
			&commanddoubles.StubClassifyCommand{}, changelog, &doubles.StubWorkspaceRepository{},
		)

		// when
		err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), commands.ConsolidateOptions{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write changelog: read-only file system")
	})

	t.Run("should end the output after the dependency lines when contributors are missing", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewChangelogBuilder().
			WithBump(entitybuilders.NewBumpLineBuilder()).
			WithoutContributors().
			BuildContent()
		changelog := doubles.NewInMemoryChangelogRepository(map[string]string{"changelog.md": content})
		cmd := commands.NewConsolidateCommand(
			&commanddoubles.StubClassifyCommand{}, changelog, &doubles.StubWorkspaceRepository{},
		)

		// when
		err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), commands.ConsolidateOptions{})

		// then
		require.NoError(t, err)
		output := changelog.Files["changelog-output.md"]
		assert.Equal(t, content, output)
		assert.True(t, bytes.HasSuffix([]byte(output), []byte("/pull/1)\n\n")))
	})
}
