package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/changelogdeps/internal/domain/commands"
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// ExclusionsController handles the "exclusions" subcommand.
type ExclusionsController struct {
	command   commands.Classify
	workspace repositories.WorkspaceRepository
}

// NewExclusionsController creates a new ExclusionsController.
func NewExclusionsController(
	command commands.Classify,
	workspace repositories.WorkspaceRepository,
) *ExclusionsController {
	return &ExclusionsController{command: command, workspace: workspace}
}

// GetBind returns the Cobra command metadata for the exclusions controller.
func (it *ExclusionsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "exclusions",
		Short: "List the dependencies used only in test or optional scope",
		Long: `Run the build tool, classify every declared dependency by scope and
print, one per line, the group:artifact keys that would be dropped from the
changelog.`,
	}
}

// Execute prints the sorted exclusion set.
func (it *ExclusionsController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	applyVerbosity(cmd)

	settings, err := loadSettings(cmd, it.workspace)
	if err != nil {
		return err
	}

	workDir, _ := cmd.Flags().GetString("workdir")
	repoRoot, _ := cmd.Flags().GetBool("repo-root")

	exclusions, err := it.command.Execute(ctx, settings, commands.ClassifyOptions{
		WorkDir:        workDir,
		DetectRepoRoot: repoRoot,
	})
	if err != nil {
		return err
	}

	for _, key := range exclusions.Sorted() {
		if _, printErr := fmt.Fprintln(cmd.OutOrStdout(), key); printErr != nil {
			return printErr
		}
	}
	return nil
}
