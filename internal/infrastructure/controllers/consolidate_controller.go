package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/changelogdeps/internal/domain/commands"
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// ConsolidateController handles the "consolidate" subcommand, which is also
// the default action of the root command.
type ConsolidateController struct {
	command   commands.Consolidate
	workspace repositories.WorkspaceRepository
}

// NewConsolidateController creates a new ConsolidateController.
func NewConsolidateController(
	command commands.Consolidate,
	workspace repositories.WorkspaceRepository,
) *ConsolidateController {
	return &ConsolidateController{command: command, workspace: workspace}
}

// GetBind returns the Cobra command metadata for the consolidate controller.
func (it *ConsolidateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "consolidate",
		Short: "Merge and filter the dependency upgrades of the changelog",
		Long: `Classify the build's dependencies by scope, then rewrite the
"Dependency Upgrades" section of the changelog: duplicate bumps are merged,
bumps of test or optional-only dependencies are dropped and the remaining
entries are sorted by name.`,
	}
}

// Execute runs the consolidation pipeline.
func (it *ConsolidateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	applyVerbosity(cmd)

	settings, err := loadSettings(cmd, it.workspace)
	if err != nil {
		return err
	}

	workDir, _ := cmd.Flags().GetString("workdir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	repoRoot, _ := cmd.Flags().GetBool("repo-root")
	skipClassification, _ := cmd.Flags().GetBool("skip-classification")

	logger.Info("Starting changelog consolidation...")

	return it.command.Execute(ctx, settings, commands.ConsolidateOptions{
		WorkDir:            workDir,
		DryRun:             dryRun,
		SkipClassification: skipClassification,
		DetectRepoRoot:     repoRoot,
		Stdout:             cmd.OutOrStdout(),
	})
}
