package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/changelogdeps/internal/infrastructure/repositories"
)

// Classify is the interface for the dependency scope classifier.
type Classify interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ClassifyOptions) (entities.CoordinateSet, error)
}

// ClassifyOptions holds runtime options for a classification.
type ClassifyOptions struct {
	WorkDir        string
	DetectRepoRoot bool // resolve WorkDir to the enclosing Git work tree first
}

// ClassifyCommand asks the build tool for its subprojects and their declared
// dependencies and returns the coordinates used only in test or optional scope.
type ClassifyCommand struct {
	buildToolRegistry *infraRepos.BuildToolRegistry
	workspace         repositories.WorkspaceRepository
}

// NewClassifyCommand creates a new ClassifyCommand.
func NewClassifyCommand(
	buildToolRegistry *infraRepos.BuildToolRegistry,
	workspace repositories.WorkspaceRepository,
) *ClassifyCommand {
	return &ClassifyCommand{
		buildToolRegistry: buildToolRegistry,
		workspace:         workspace,
	}
}

// Execute runs the project listing and, when subprojects exist, one batched
// dependency listing. Unexpected output never fails; only a build tool that
// cannot be started does.
func (it *ClassifyCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ClassifyOptions,
) (entities.CoordinateSet, error) {
	workDir, err := resolveWorkDir(it.workspace, opts.WorkDir, opts.DetectRepoRoot)
	if err != nil {
		return nil, err
	}

	buildTool := it.buildToolRegistry.Get(settings.BuildTool.Type)
	if buildTool == nil {
		return nil, fmt.Errorf(
			"unknown build tool %q (available: %s)",
			settings.BuildTool.Type, strings.Join(it.buildToolRegistry.Names(), ", "),
		)
	}

	projectsOutput, err := buildTool.ListProjects(ctx, workDir, settings.BuildTool)
	if err != nil {
		return nil, fmt.Errorf("failed to list subprojects: %w", err)
	}

	subprojects := entities.ParseSubprojects(projectsOutput)
	logger.Infof("Found %d subprojects: %s", len(subprojects), strings.Join(subprojects, ", "))

	exclusions := entities.NewCoordinateSet()
	if len(subprojects) == 0 {
		logger.Info("No subprojects found, skipping dependency classification")
		return exclusions.Union(settings.ExtraExclusions()), nil
	}

	logger.Infof("Fetching dependencies of %d subprojects in one build...", len(subprojects))
	dependenciesOutput, err := buildTool.ListDependencies(ctx, workDir, settings.BuildTool, subprojects)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependencies: %w", err)
	}

	classification := entities.ClassifyDependencyOutput(dependenciesOutput, settings.Scopes)
	exclusions = classification.Exclusions()
	logger.Infof(
		"Classified dependencies: %d test/optional, %d implementation, %d excluded",
		classification.TestOrOptional.Len(), classification.Implementation.Len(), exclusions.Len(),
	)
	for _, key := range exclusions.Sorted() {
		logger.Debugf("Excluding test/optional-only dependency %s", key)
	}

	return exclusions.Union(settings.ExtraExclusions()), nil
}

// resolveWorkDir returns dir, or the Git work tree root containing it when
// detect is set. An empty dir means the current directory.
func resolveWorkDir(
	workspace repositories.WorkspaceRepository,
	dir string,
	detect bool,
) (string, error) {
	if dir == "" {
		dir = "."
	}
	if !detect {
		return dir, nil
	}

	root, err := workspace.Root(dir)
	if err != nil {
		return "", fmt.Errorf("failed to detect repository root: %w", err)
	}
	logger.Infof("Using repository root: %s", root)
	return root, nil
}
