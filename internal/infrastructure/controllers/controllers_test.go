//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/infrastructure/controllers"
	"github.com/rios0rios0/changelogdeps/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/changelogdeps/test/infrastructure/repositorydoubles"
)

// newCommand returns a command carrying the flags registered on the root
// command, parsed from args.
func newCommand(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().StringP("workdir", "C", ".", "")
	cmd.Flags().String("input", "", "")
	cmd.Flags().String("output", "", "")
	cmd.Flags().Bool("repo-root", false, "")
	cmd.Flags().Bool("skip-classification", false, "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	require.NoError(t, cmd.ParseFlags(args))

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return cmd, &stdout
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeConfigIn(t, t.TempDir(), content)
}

func writeConfigIn(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".changelogdeps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConsolidateController(t *testing.T) {
	t.Parallel()

	t.Run("should bind to the consolidate subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewConsolidateController(&commanddoubles.StubConsolidateCommand{}, &doubles.StubWorkspaceRepository{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "consolidate", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})

	t.Run("should pass flags and config through to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubConsolidateCommand{}
		controller := controllers.NewConsolidateController(stub, &doubles.StubWorkspaceRepository{})
		config := writeConfig(t, "input: CHANGES.md\nexclude: [\"org.example:bom\"]\n")
		cmd, stdout := newCommand(t,
			"--config", config,
			"--workdir", "/work",
			"--output", "out.md",
			"--dry-run",
			"--repo-root",
			"--skip-classification",
		)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "CHANGES.md", stub.LastSettings.Input)
		assert.Equal(t, "out.md", stub.LastSettings.Output)
		assert.Equal(t, []string{"org.example:bom"}, stub.LastSettings.Exclude)
		assert.Equal(t, "/work", stub.LastOpts.WorkDir)
		assert.True(t, stub.LastOpts.DryRun)
		assert.True(t, stub.LastOpts.DetectRepoRoot)
		assert.True(t, stub.LastOpts.SkipClassification)
		assert.Same(t, stdout, stub.LastOpts.Stdout)
	})

	t.Run("should fail before running on an invalid config", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubConsolidateCommand{}
		controller := controllers.NewConsolidateController(stub, &doubles.StubWorkspaceRepository{})
		config := writeConfig(t, "exclude: [\"not-a-coordinate\"]\n")
		cmd, _ := newCommand(t, "--config", config)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should reject an empty input override", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubConsolidateCommand{}
		controller := controllers.NewConsolidateController(stub, &doubles.StubWorkspaceRepository{})
		config := writeConfig(t, "output: out.md\n")
		cmd, _ := newCommand(t, "--config", config, "--input", "")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input is required")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should discover the config file in the work directory", func(t *testing.T) {
		t.Parallel()

		// given
		workDir := t.TempDir()
		writeConfigIn(t, workDir, "input: CHANGES.md\n")
		stub := &commanddoubles.StubConsolidateCommand{}
		controller := controllers.NewConsolidateController(stub, &doubles.StubWorkspaceRepository{})
		cmd, _ := newCommand(t, "-C", workDir)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "CHANGES.md", stub.LastSettings.Input)
	})

	t.Run("should discover the config file at the repository root", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "configs"), 0o750))
		writeConfigIn(t, filepath.Join(root, "configs"), "output: RELEASE.md\n")
		nested := filepath.Join(root, "docs")
		require.NoError(t, os.MkdirAll(nested, 0o750))
		stub := &commanddoubles.StubConsolidateCommand{}
		workspace := &doubles.StubWorkspaceRepository{RootDir: root}
		controller := controllers.NewConsolidateController(stub, workspace)
		cmd, _ := newCommand(t, "-C", nested, "--repo-root")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{nested}, workspace.RootDirs)
		assert.Equal(t, "RELEASE.md", stub.LastSettings.Output)
	})

	t.Run("should fail when the repository root for the config search is missing", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubConsolidateCommand{}
		workspace := &doubles.StubWorkspaceRepository{RootErr: errors.New("repository does not exist")}
		controller := controllers.NewConsolidateController(stub, workspace)
		cmd, _ := newCommand(t, "-C", t.TempDir(), "--repo-root")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to detect repository root")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubConsolidateCommand{ExecuteErr: entities.ErrChangelogUnreadable}
		controller := controllers.NewConsolidateController(stub, &doubles.StubWorkspaceRepository{})
		cmd, _ := newCommand(t, "--config", writeConfig(t, "{}\n"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrChangelogUnreadable)
	})
}

func TestExclusionsController(t *testing.T) {
	t.Parallel()

	t.Run("should bind to the exclusions subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewExclusionsController(&commanddoubles.StubClassifyCommand{}, &doubles.StubWorkspaceRepository{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "exclusions", bind.Use)
	})

	t.Run("should print the sorted exclusions one per line", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubClassifyCommand{
			Exclusions: entities.NewCoordinateSet("org.junit:junit", "com.google.code.findbugs:jsr305"),
		}
		controller := controllers.NewExclusionsController(stub, &doubles.StubWorkspaceRepository{})
		cmd, stdout := newCommand(t, "--config", writeConfig(t, "{}\n"), "-C", "/work", "--repo-root")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "com.google.code.findbugs:jsr305\norg.junit:junit\n", stdout.String())
		assert.Equal(t, "/work", stub.LastOpts.WorkDir)
		assert.True(t, stub.LastOpts.DetectRepoRoot)
	})

	t.Run("should print nothing when the classifier fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubClassifyCommand{ExecuteErr: entities.ErrBuildToolUnavailable}
		controller := controllers.NewExclusionsController(stub, &doubles.StubWorkspaceRepository{})
		cmd, stdout := newCommand(t, "--config", writeConfig(t, "{}\n"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrBuildToolUnavailable)
		assert.Empty(t, stdout.String())
	})
}
