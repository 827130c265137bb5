package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// Consolidate is the interface for the changelog consolidation pipeline.
type Consolidate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ConsolidateOptions) error
}

// ConsolidateOptions holds runtime options for a single consolidation.
type ConsolidateOptions struct {
	WorkDir            string
	DryRun             bool      // print the result instead of writing it
	SkipClassification bool      // do not invoke the build tool
	DetectRepoRoot     bool      // resolve WorkDir to the enclosing Git work tree first
	Stdout             io.Writer // dry-run destination
}

// ConsolidateCommand classifies dependencies and rewrites the dependency
// upgrades section of the changelog with the merged bump entries.
type ConsolidateCommand struct {
	classify  Classify
	changelog repositories.ChangelogRepository
	workspace repositories.WorkspaceRepository
}

// NewConsolidateCommand creates a new ConsolidateCommand.
func NewConsolidateCommand(
	classify Classify,
	changelog repositories.ChangelogRepository,
	workspace repositories.WorkspaceRepository,
) *ConsolidateCommand {
	return &ConsolidateCommand{
		classify:  classify,
		changelog: changelog,
		workspace: workspace,
	}
}

// Execute runs the classifier, then reads, rewrites and writes the changelog.
func (it *ConsolidateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ConsolidateOptions,
) error {
	workDir, err := resolveWorkDir(it.workspace, opts.WorkDir, opts.DetectRepoRoot)
	if err != nil {
		return err
	}

	resolved := *settings
	resolved.ResolvePaths(workDir)

	exclusions := resolved.ExtraExclusions()
	if opts.SkipClassification {
		logger.Info("Skipping dependency classification")
	} else {
		exclusions, err = it.classify.Execute(ctx, &resolved, ClassifyOptions{WorkDir: workDir})
		if err != nil {
			return err
		}
	}

	content, err := it.changelog.Read(resolved.Input)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrChangelogUnreadable, err)
	}

	sections := entities.SplitChangelog(content, resolved.Markers)
	if len(sections.Footer) == 0 {
		logger.Debugf("No %q heading found in %s", resolved.Markers.Contributors, resolved.Input)
	}

	records := entities.ConsolidateUpgrades(sections.DependencyLines, exclusions)
	logger.Infof(
		"Consolidated %d dependency section lines into %d upgrades",
		len(sections.DependencyLines), len(records),
	)
	warnVersionOrderConflicts(sections.DependencyLines, exclusions)

	output := entities.RenderChangelog(sections, records)

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would write %s", resolved.Output)
		if opts.Stdout != nil {
			if _, writeErr := io.WriteString(opts.Stdout, output); writeErr != nil {
				return fmt.Errorf("failed to print changelog: %w", writeErr)
			}
		}
		return nil
	}

	if writeErr := it.changelog.Write(resolved.Output, output); writeErr != nil {
		return fmt.Errorf("failed to write changelog: %w", writeErr)
	}
	logger.Infof("Wrote consolidated changelog to %s", resolved.Output)
	return nil
}

func warnVersionOrderConflicts(lines []string, exclusions entities.CoordinateSet) {
	for _, conflict := range entities.FindVersionOrderConflicts(lines, exclusions) {
		logger.Warnf(
			"%s: kept %s -> %s by string order, semantic order would give %s -> %s",
			conflict.Name, conflict.Lowest, conflict.Highest,
			conflict.SemanticLowest, conflict.SemanticHighest,
		)
	}
}
