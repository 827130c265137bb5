package gradle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

const (
	buildToolName    = "gradle"
	projectsTask     = "projects"
	dependenciesTask = "dependencies"
)

// BuildToolRepository runs the Gradle wrapper to report projects and
// dependencies.
type BuildToolRepository struct{}

var _ repositories.BuildToolRepository = (*BuildToolRepository)(nil)

// NewBuildToolRepository creates a new Gradle build tool repository.
func NewBuildToolRepository() *BuildToolRepository {
	return &BuildToolRepository{}
}

// Name returns "gradle".
func (it *BuildToolRepository) Name() string {
	return buildToolName
}

// ListProjects runs "<wrapper> projects".
func (it *BuildToolRepository) ListProjects(
	ctx context.Context,
	dir string,
	config entities.BuildToolConfig,
) (string, error) {
	return it.run(ctx, dir, config, []string{projectsTask})
}

// ListDependencies runs "<wrapper> :a:dependencies :b:dependencies ..." in a
// single invocation.
func (it *BuildToolRepository) ListDependencies(
	ctx context.Context,
	dir string,
	config entities.BuildToolConfig,
	subprojects []string,
) (string, error) {
	return it.run(ctx, dir, config, DependencyTasks(subprojects))
}

// DependencyTasks returns the qualified dependencies task of each subproject.
func DependencyTasks(subprojects []string) []string {
	tasks := make([]string, 0, len(subprojects))
	for _, project := range subprojects {
		if !strings.HasPrefix(project, ":") {
			project = ":" + project
		}
		tasks = append(tasks, project+":"+dependenciesTask)
	}
	return tasks
}

// run executes the wrapper and returns its stdout. A non-zero exit status is
// only logged: the report is parsed as far as it goes. Failing to start the
// process is an error.
func (it *BuildToolRepository) run(
	ctx context.Context,
	dir string,
	config entities.BuildToolConfig,
	tasks []string,
) (string, error) {
	binary, err := resolveBinary(dir, config.Binary)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrBuildToolUnavailable, err)
	}

	args := make([]string, 0, len(tasks)+len(config.Args))
	args = append(args, tasks...)
	args = append(args, config.Args...)

	logger.Debugf("[gradle] Running %s %s in %s", binary, strings.Join(args, " "), dir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return "", fmt.Errorf("%w: %w", entities.ErrBuildToolUnavailable, runErr)
		}
		logger.Warnf("[gradle] %s exited with code %d", strings.Join(tasks, " "), exitErr.ExitCode())
	}

	if stderr.Len() > 0 {
		logger.Debugf("[gradle] stderr:\n%s", stderr.String())
	}

	return stdout.String(), nil
}

// resolveBinary makes a binary given as a path ("./gradlew") absolute against
// dir. Bare names are left for PATH lookup.
func resolveBinary(dir, binary string) (string, error) {
	if !strings.ContainsRune(binary, '/') || filepath.IsAbs(binary) {
		return binary, nil
	}
	return filepath.Abs(filepath.Join(dir, binary))
}
