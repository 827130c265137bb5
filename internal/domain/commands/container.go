package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewClassifyCommand); err != nil {
		return err
	}
	if err := container.Provide(NewConsolidateCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ClassifyCommand) Classify {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ConsolidateCommand) Consolidate {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
