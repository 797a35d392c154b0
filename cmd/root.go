package cmd

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/melih-ucgun/logprinter/internal/config"
	"github.com/melih-ucgun/logprinter/internal/consts"
	"github.com/melih-ucgun/logprinter/pkg/logprinter"
)

// Execute loads defaults from the environment (and a .env file in the
// working directory) and runs the root command.
func Execute() error {
	if err := config.LoadEnvFile(consts.DefaultEnvFile); err != nil {
		pterm.Warning.WithWriter(os.Stderr).Println(err.Error())
	}
	return newRootCmd(config.Defaults(), os.Stdout).Execute()
}

func newRootCmd(defaults config.Options, out io.Writer) *cobra.Command {
	opts := defaults

	rootCmd := &cobra.Command{
		Use:           consts.AppName,
		Short:         "Themed, leveled terminal logging with per-session log files.",
		Long:          `logprinter prints colored log lines to the terminal and can mirror them to a session log file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       consts.Version,
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.Dir, "dir", "d", defaults.Dir, "directory for the session log file, empty disables file logging (e.g. "+consts.GetDefaultLogDir()+")")
	flags.StringVarP(&opts.Level, "level", "l", defaults.Level, "terminal threshold level")
	flags.StringVar(&opts.FileLevel, "file-level", defaults.FileLevel, "file threshold level")
	flags.StringVar(&opts.Timezone, "tz", defaults.Timezone, "time zone for terminal timestamps")
	flags.StringVar(&opts.DateFormat, "date-format", defaults.DateFormat, "strftime layout for terminal timestamps")
	flags.BoolVar(&opts.NoTime, "no-time", defaults.NoTime, "omit timestamps from terminal lines")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", defaults.Quiet, "disable terminal output")
	flags.BoolVar(&opts.NoRaise, "no-raise", defaults.NoRaise, "report sink failures without failing the command")

	rootCmd.AddCommand(
		newDemoCmd(&opts),
		newLogCmd(&opts),
		newThemeCmd(&opts),
	)
	return rootCmd
}

// buildLogger creates a logger from the parsed flags, printing to the
// command's output.
func buildLogger(cmd *cobra.Command, opts *config.Options) (*logprinter.Logger, error) {
	loggerOpts, err := opts.LoggerOptions()
	if err != nil {
		return nil, err
	}
	loggerOpts = append(loggerOpts, logprinter.WithOutput(cmd.OutOrStdout()))
	return logprinter.New(loggerOpts...)
}
