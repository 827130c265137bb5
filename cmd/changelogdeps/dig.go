package main

import (
	"github.com/rios0rios0/changelogdeps/internal"
	"github.com/rios0rios0/changelogdeps/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

// injectApp builds the container once and returns the application context
// together with the controller behind the root command.
func injectApp() (*internal.AppInternal, *controllers.ConsolidateController) {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var appInternal *internal.AppInternal
	var consolidateController *controllers.ConsolidateController
	if err := container.Invoke(func(ai *internal.AppInternal, cc *controllers.ConsolidateController) {
		appInternal = ai
		consolidateController = cc
	}); err != nil {
		panic(err)
	}

	return appInternal, consolidateController
}
