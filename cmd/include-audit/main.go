// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command include-audit finds unused includes and reports which
// headers provide the symbols a C/C++ translation unit uses.
// Implements: prd009-technology-stack R4;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "include-audit",
		Short: "Unused-include analyzer for C and C++",
		Long:  "include-audit analyzes translation units, determines which headers provide each used symbol, and reports include directives nothing depends on.",
	}

	// Global flags.
	rootCmd.PersistentFlags().StringSliceP("include-dir", "I", nil, "Header search directory (repeatable)")
	rootCmd.PersistentFlags().Bool("stdlib", false, "Also judge angle-bracket includes")
	rootCmd.PersistentFlags().Bool("construction", false, "Constructing an object uses its type")
	rootCmd.PersistentFlags().Bool("members", false, "Member access uses the member")
	rootCmd.PersistentFlags().Bool("operators", false, "Operator calls use the operator function")
	rootCmd.PersistentFlags().Int("workers", 4, "Concurrently analyzed units")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging to stderr")

	// Bind flags to viper.
	viper.BindPFlag("include-dir", rootCmd.PersistentFlags().Lookup("include-dir"))
	viper.BindPFlag("stdlib", rootCmd.PersistentFlags().Lookup("stdlib"))
	viper.BindPFlag("construction", rootCmd.PersistentFlags().Lookup("construction"))
	viper.BindPFlag("members", rootCmd.PersistentFlags().Lookup("members"))
	viper.BindPFlag("operators", rootCmd.PersistentFlags().Lookup("operators"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: INCLUDE_AUDIT_STDLIB, INCLUDE_AUDIT_WORKERS, etc.
	viper.SetEnvPrefix("INCLUDE_AUDIT")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".include-audit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print include-audit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("include-audit %s\n", version)
		},
	}
}
