package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func querySQLCmd() *cobra.Command {
	var values []string
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Execute a read-only SQL query against the triple table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(strings.Join(args, " "), bindArgs(values))
		},
	}
	cmd.Flags().StringArrayVar(&values, "arg", nil, "Bind parameter, in placeholder order (repeatable)")
	return cmd
}

func runSQL(query string, args []any) error {
	ctx := context.Background()

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	rows, err := db.RunSQL(ctx, query, args...)
	if err != nil {
		return err
	}
	return printJSON(rows)
}

func bindArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
