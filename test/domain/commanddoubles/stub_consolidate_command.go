//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changelogdeps/internal/domain/commands"
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
)

// StubConsolidateCommand is a stub implementation of commands.Consolidate.
type StubConsolidateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ConsolidateOptions
}

var _ commands.Consolidate = (*StubConsolidateCommand)(nil)

func (s *StubConsolidateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ConsolidateOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
