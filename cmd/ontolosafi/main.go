package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath = "ontolosafi.yaml"

func main() {
	root := &cobra.Command{
		Use:          "ontolosafi",
		Short:        "Browse the ontolosafi tourism ontology",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", configPath, "Path to the project config")
	root.AddCommand(initCmd())
	root.AddCommand(ingestCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(httpCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(queryCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
