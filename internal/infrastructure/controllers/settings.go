package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// loadSettings resolves the settings from the --config flag, a config file
// discovered next to the build or the defaults, then applies the
// --input/--output overrides.
func loadSettings(cmd *cobra.Command, workspace repositories.WorkspaceRepository) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	settings := entities.NewDefaultSettings()
	if configPath == "" {
		searchDir, err := configSearchDir(cmd, workspace)
		if err != nil {
			return nil, err
		}

		found, err := entities.FindConfigFile(searchDir)
		switch {
		case errors.Is(err, entities.ErrConfigNotFound):
			logger.Debugf("No config file found from %s, using defaults", searchDir)
		case err != nil:
			return nil, err
		default:
			configPath = found
		}
	}

	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if cmd.Flags().Changed("input") {
		settings.Input, _ = cmd.Flags().GetString("input")
	}
	if cmd.Flags().Changed("output") {
		settings.Output, _ = cmd.Flags().GetString("output")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	for _, name := range settings.Exclude {
		if _, ok := entities.ParseCoordinate(name); !ok {
			logger.Debugf("Exclusion %q is not a group:artifact key, it only matches bumps with that exact name", name)
		}
	}
	return settings, nil
}

// configSearchDir returns --workdir, or the root of its Git work tree when
// --repo-root is set.
func configSearchDir(cmd *cobra.Command, workspace repositories.WorkspaceRepository) (string, error) {
	workDir, _ := cmd.Flags().GetString("workdir")
	if workDir == "" {
		workDir = "."
	}
	if repoRoot, _ := cmd.Flags().GetBool("repo-root"); !repoRoot {
		return workDir, nil
	}

	root, err := workspace.Root(workDir)
	if err != nil {
		return "", fmt.Errorf("failed to detect repository root: %w", err)
	}
	return root, nil
}

// applyVerbosity switches logrus to debug level when --verbose is set.
func applyVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}
