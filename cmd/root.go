// Package cmd provides the command line interface for ping-ops
/*
Copyright © 2025 Travis Lyons travis.lyons@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trly/ping-ops/internal/config"
	"github.com/trly/ping-ops/internal/log"
)

// RootCommand represents the root command for the ping-ops CLI.
type RootCommand struct{}

var (
	userMode       bool
	configFilePath string
	unitDir        string
	pingPath       string
	verbose        bool
)

// GetCobraCommand returns the cobra root command for the ping-ops CLI.
func (c *RootCommand) GetCobraCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ping-ops",
		Short: "Ping-Ops manages continuously-running ping probes as systemd service units.",
		Long: `Ping-Ops manages continuously-running ping probes as systemd service units.
Each probe target gets its own continuous-ping service that systemd keeps
running and restarts across failures and reboots. Running ping-ops without a
subcommand opens the interactive menu.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFilePath != "" {
				config.SetConfigFilePath(configFilePath)
			}
			cfg := config.InitConfig()
			log.Init(verbose)

			if verbose {
				cfg.Verbose = true
			}

			if userMode {
				cfg.UserMode = true
				cfg.UnitDir = os.ExpandEnv(config.DefaultUserUnitDir)
			}

			if unitDir != "" {
				cfg.UnitDir = unitDir
			}

			if pingPath != "" {
				cfg.PingPath = pingPath
			}

			configProv := config.NewDefaultConfigProvider()
			configProv.SetConfig(cfg)

			SetupCommandContext(cmd, NewApp(log.GetLogger(), configProv))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSystem(cmd); err != nil {
				return err
			}
			return runShell(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&userMode, "user", "u", false, "Manage units on the user service manager")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&unitDir, "unit-dir", "", "Directory where unit files are written")
	rootCmd.PersistentFlags().StringVar(&pingPath, "ping-path", "", "Path to the ping binary used by generated units")

	rootCmd.AddCommand(
		(&ListCommand{}).GetCobraCommand(),
		(&AddCommand{}).GetCobraCommand(),
		(&RemoveCommand{}).GetCobraCommand(),
		(&StatusCommand{}).GetCobraCommand(),
		(&LogsCommand{}).GetCobraCommand(),
		(&RestartCommand{}).GetCobraCommand(),
		(&EditCommand{}).GetCobraCommand(),
		(&VersionCommand{}).GetCobraCommand(),
		(&UpdateCommand{}).GetCobraCommand(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := (&RootCommand{}).GetCobraCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
