package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/melih-ucgun/logprinter/internal/adapters/ui"
	"github.com/melih-ucgun/logprinter/internal/config"
	"github.com/melih-ucgun/logprinter/pkg/logprinter"
)

const themeSample = "sample with a 'quoted' word"

func newThemeCmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the levels and how each one is rendered",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(cmd, opts)
			if err != nil {
				return err
			}

			var out ui.UI = ui.NewPtermUI().WithWriter(cmd.OutOrStdout())
			if opts.Quiet {
				out = &ui.NoOpUI{}
			}

			out.Title("Theme")
			out.Section("Levels")
			if err := out.Table(themeRows(log)); err != nil {
				return err
			}
			out.Section("Session file")
			out.Println(sessionSummary(log))
			return nil
		},
	}
}

func themeRows(log *logprinter.Logger) [][]string {
	theme := log.Theme()
	rows := [][]string{{"Level", "Rank", "Terminal", "File", "Sample"}}
	for _, level := range logprinter.Levels() {
		rows = append(rows, []string{
			level.String(),
			strconv.Itoa(level.Rank()),
			strconv.FormatBool(log.PrintsToTerminal(level)),
			strconv.FormatBool(log.WritesToFile(level)),
			logprinter.RenderTerminal(level, "", themeSample, theme.Resolve(level), false),
		})
	}
	return rows
}

func sessionSummary(log *logprinter.Logger) string {
	if log.FilePath() == "" {
		return "disabled"
	}
	return log.FilePath()
}
