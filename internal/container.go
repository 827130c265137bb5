package internal

import (
	"github.com/rios0rios0/changelogdeps/internal/domain/commands"
	"github.com/rios0rios0/changelogdeps/internal/infrastructure/controllers"
	"github.com/rios0rios0/changelogdeps/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all internal providers with the DIG container.
// Entities are plain values and settings are loaded per invocation by the
// controllers, so only three layers take part.
func RegisterProviders(container *dig.Container) error {
	// build tool, changelog and workspace repositories -> commands -> controllers
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	return container.Provide(NewAppInternal)
}
