package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/changelogdeps/internal"
	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
)

func buildRootCommand(consolidateController entities.Controller) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "changelogdeps",
		Short: "Consolidate dependency bumps in generated release notes",
		Long: `Post-processes a generated changelog before a release.

The Gradle wrapper is asked for every subproject and its declared
dependencies; dependencies that only appear in test or optional
configurations are excluded. The "Dependency Upgrades" section of
changelog.md is then rewritten into changelog-output.md with one
merged, sorted entry per dependency.

Usage modes:
  changelogdeps               Consolidate changelog.md in the current directory
  changelogdeps exclusions    Print the test/optional-only dependencies`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          consolidateController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("workdir", "C", ".",
		"Directory holding the build and the changelog")
	cmd.PersistentFlags().String("input", "",
		"Changelog to read (default: changelog.md)")
	cmd.PersistentFlags().String("output", "",
		"Changelog to write (default: changelog-output.md)")
	cmd.PersistentFlags().Bool("repo-root", false,
		"Run from the root of the Git work tree containing --workdir")
	cmd.PersistentFlags().Bool("skip-classification", false,
		"Do not run the build tool; only configured exclusions apply")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Print the consolidated changelog instead of writing it")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	_ = godotenv.Load()

	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext, consolidateController := injectApp()
	cobraRoot := buildRootCommand(consolidateController)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'changelogdeps': %s", err)
	}
}
