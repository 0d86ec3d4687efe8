package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ontolosafi/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	var ontologyPath string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold an ontolosafi project config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(configPath, projectName, ontologyPath)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	cmd.Flags().StringVar(&ontologyPath, "ontology", "ontolosafi.rdf", "Path to the ontology document")
	return cmd
}

func runInit(path, projectName, ontologyPath string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Default(projectName)
	cfg.Ontology.Path = ontologyPath

	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
