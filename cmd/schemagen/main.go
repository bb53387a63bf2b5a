// Package main provides the schemagen binary entry point.
// Schemagen renders schema.org JSON-LD for content items described in YAML
// documents, using the same pipeline the embedded engine exposes to hosts.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "schemagen"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Schema.org JSON-LD generator",
		Long: `Schemagen builds schema.org JSON-LD for content items.

Content items are described in YAML documents; site settings control which
schema type each content type gets and how properties map to fields. The
rendered output follows the JSON-LD byte contract: ordered keys, two-space
indentation, no HTML escaping.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Process config file (YAML)")
	cmd.PersistentFlags().StringVarP(&flags.settingsPath, "settings", "s", "", "Site settings file (YAML), overrides config")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(buildCmd(&flags))
	cmd.AddCommand(validateCmd(&flags))
	cmd.AddCommand(typesCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
