/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanirdb/vanir-go/pkg/codecs"
	"github.com/vanirdb/vanir-go/pkg/schema"
)

// loadedCodec is the codec compiled from --schema, set by the root
// PersistentPreRunE before any subcommand runs.
var loadedCodec *codecs.NamedTupleCodec

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vanirwire",
	Short: "VanirWire - wire frame tool for the VanirDB protocol",
	Long: `VanirWire encodes and decodes VanirDB named tuple wire frames
against a YAML schema definition, for protocol debugging and driver
development.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		if schemaPath == "" {
			return fmt.Errorf("--schema is required")
		}
		def, err := schema.Load(schemaPath)
		if err != nil {
			return fmt.Errorf("failed to load schema: %w", err)
		}
		codec, err := def.Compile()
		if err != nil {
			return fmt.Errorf("failed to compile schema: %w", err)
		}
		loadedCodec = codec
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global schema flag
	rootCmd.PersistentFlags().StringP("schema", "s", "", "Path to the named tuple schema YAML file")
}
