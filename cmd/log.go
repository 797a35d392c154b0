package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/melih-ucgun/logprinter/internal/config"
	"github.com/melih-ucgun/logprinter/pkg/logprinter"
)

func newLogCmd(opts *config.Options) *cobra.Command {
	var levelName string

	logCmd := &cobra.Command{
		Use:   "log [message...]",
		Short: "Log a single line",
		Long:  `Log joins its arguments with spaces and logs them at the given level. Use --as none for a bare line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logprinter.ParseLevel(levelName)
			if err != nil {
				return err
			}

			log, err := buildLogger(cmd, opts)
			if err != nil {
				return err
			}

			if err := log.LogLine(strings.Join(args, " "), level); err != nil {
				return fmt.Errorf("log line: %w", err)
			}
			return nil
		},
	}
	logCmd.Flags().StringVar(&levelName, "as", logprinter.LevelNormal.String(), "level of the line")
	return logCmd
}
