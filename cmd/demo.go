package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/melih-ucgun/logprinter/internal/config"
	"github.com/melih-ucgun/logprinter/internal/consts"
	"github.com/melih-ucgun/logprinter/pkg/logprinter"
)

func newDemoCmd(opts *config.Options) *cobra.Command {
	var all bool

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the welcome banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(cmd, opts)
			if err != nil {
				return err
			}

			if err := banner(log); err != nil {
				return err
			}
			if all {
				return everyLevel(log)
			}
			return nil
		},
	}
	demoCmd.Flags().BoolVarP(&all, "all", "a", false, "also print one line per level")
	return demoCmd
}

func banner(log *logprinter.Logger) error {
	rule := strings.Repeat("-", consts.BannerWidth)
	name := strings.ToUpper(consts.AppName[:1]) + consts.AppName[1:]

	return errors.Join(
		log.Bare(""),
		log.Motd(rule),
		log.Motd(fmt.Sprintf("%s '%s'", name, consts.Version)),
		log.Motd(fmt.Sprintf("Author: '%s <%s>'", consts.Author, consts.Email)),
		log.Motd(rule),
		log.Bare(""),
	)
}

func everyLevel(log *logprinter.Logger) error {
	var errs []error
	for _, level := range logprinter.Levels() {
		errs = append(errs, log.Logf(level, "a %s line with a 'quoted' word", strings.ToLower(level.String())))
	}
	return errors.Join(errs...)
}
