// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd009-technology-stack R4.3-R4.9.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/include-audit/pkg/audit"
)

// newCheckCmd creates the "check" command.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [units...]",
		Short: "Analyze translation units for unused includes",
		Long:  "Check loads each translation unit, resolves every used symbol to the headers that could provide it, and reports the include directives nothing depends on.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}

	cmd.Flags().Bool("satisfied", false, "Report which header provides each reference")
	cmd.Flags().Bool("fix", false, "Remove unused includes from the units")
	cmd.Flags().Bool("json", false, "Emit results as JSON")

	return cmd
}

// runCheck analyzes the given units and prints the findings.
func runCheck(cmd *cobra.Command, args []string) error {
	satisfied, _ := cmd.Flags().GetBool("satisfied")
	fix, _ := cmd.Flags().GetBool("fix")
	asJSON, _ := cmd.Flags().GetBool("json")

	a, err := audit.New(audit.Config{
		IncludeDirs:   viper.GetStringSlice("include-dir"),
		AnalyzeStdlib: viper.GetBool("stdlib"),
		Construction:  viper.GetBool("construction"),
		Members:       viper.GetBool("members"),
		Operators:     viper.GetBool("operators"),
		Satisfied:     satisfied,
		Fix:           fix,
		Workers:       viper.GetInt("workers"),
		Verbose:       viper.GetBool("verbose"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results, err := a.Run(ctx, args)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(results)
	}

	failed := false
	findings := false
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Unit, res.Err)
			failed = true
			continue
		}
		for _, ref := range res.References {
			fmt.Println(ref.Message)
		}
		for _, inc := range res.Unused {
			fmt.Println(inc.Message)
			findings = true
		}
		if res.Fixed {
			fmt.Printf("%s: removed %d include(s)\n", res.Unit, len(res.Unused))
		}
	}
	if failed {
		return fmt.Errorf("some units failed to analyze")
	}
	if findings && !fix {
		os.Exit(1)
	}
	return nil
}

// printJSON emits one report object per unit.
func printJSON(results []*audit.UnitResult) error {
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
