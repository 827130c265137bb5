//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changelogdeps/internal/domain/commands"
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
)

// StubClassifyCommand is a stub implementation of commands.Classify.
type StubClassifyCommand struct {
	Exclusions       entities.CoordinateSet
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ClassifyOptions
}

var _ commands.Classify = (*StubClassifyCommand)(nil)

func (s *StubClassifyCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ClassifyOptions,
) (entities.CoordinateSet, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Exclusions == nil {
		return entities.NewCoordinateSet(), nil
	}
	return s.Exclusions, nil
}
