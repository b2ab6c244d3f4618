package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/snek/project"
)

const version = "0.1.0"

var log = commonlog.GetLogger("snek.cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "snek",
		Short:         "Parser toolchain for the Snek language",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd, verbosity, logFile)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

// configureLogging applies the flags, falling back to the settings of the
// project in the working directory when a flag was not given.
func configureLogging(cmd *cobra.Command, verbosity int, logFile string) {
	flags := cmd.Flags()
	if !flags.Changed("verbose") || !flags.Changed("log-file") {
		if proj, err := project.Load(); err == nil {
			if !flags.Changed("verbose") {
				verbosity = proj.Config.Log.Verbosity
			}
			if !flags.Changed("log-file") {
				logFile = proj.Config.Log.File
			}
		}
	}

	var path *string
	if logFile != "" {
		path = &logFile
	}
	commonlog.Configure(verbosity, path)
	log.Debugf("snek %s, verbosity %d", version, verbosity)
}
