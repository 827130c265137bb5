package internal

import (
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
)

// AppInternal holds every controller exposed on the command line.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
