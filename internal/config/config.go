package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/melih-ucgun/logprinter/internal/consts"
	"github.com/melih-ucgun/logprinter/pkg/logprinter"
)

// Options holds the command line settings for building a logger.
type Options struct {
	Dir        string
	Level      string
	FileLevel  string
	Timezone   string
	DateFormat string
	NoTime     bool
	Quiet      bool
	NoRaise    bool
}

// Defaults returns the built-in settings, overridden by LOGPRINTER_*
// variables from the environment.
func Defaults() Options {
	o := Options{
		Level:      logprinter.LevelNormal.String(),
		FileLevel:  logprinter.LevelDebug.String(),
		Timezone:   "UTC",
		DateFormat: logprinter.DefaultDateFormat,
	}
	if v, ok := os.LookupEnv(consts.EnvDir); ok {
		o.Dir = v
	}
	if v, ok := os.LookupEnv(consts.EnvLevel); ok {
		o.Level = v
	}
	if v, ok := os.LookupEnv(consts.EnvFileLevel); ok {
		o.FileLevel = v
	}
	if v, ok := os.LookupEnv(consts.EnvTimezone); ok {
		o.Timezone = v
	}
	if v, ok := os.LookupEnv(consts.EnvDateFormat); ok {
		o.DateFormat = v
	}
	o.NoTime = envBool(consts.EnvNoTime)
	o.Quiet = envBool(consts.EnvQuiet)
	o.NoRaise = envBool(consts.EnvNoRaise)
	return o
}

// LoadEnvFile loads variables from path without overriding ones already
// set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func envBool(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

// LoggerOptions converts the settings into logprinter options.
func (o Options) LoggerOptions() ([]logprinter.Option, error) {
	level, err := parseThreshold(o.Level)
	if err != nil {
		return nil, fmt.Errorf("terminal level: %w", err)
	}
	fileLevel, err := parseThreshold(o.FileLevel)
	if err != nil {
		return nil, fmt.Errorf("file level: %w", err)
	}

	loc := time.UTC
	if tz := strings.TrimSpace(o.Timezone); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("timezone: %w", err)
		}
	}

	opts := []logprinter.Option{
		logprinter.WithPrinting(!o.Quiet),
		logprinter.WithTimestamp(!o.NoTime),
		logprinter.WithTerminalLevel(level),
		logprinter.WithFileLevel(fileLevel),
		logprinter.WithRaiseOnError(!o.NoRaise),
		logprinter.WithLocation(loc),
		logprinter.WithDateFormat(o.DateFormat),
	}
	if dir := strings.TrimSpace(o.Dir); dir != "" {
		opts = append(opts, logprinter.WithFileDirectory(dir))
	}
	return opts, nil
}

// parseThreshold accepts only themed levels; a bare line cannot be a threshold.
func parseThreshold(name string) (logprinter.Level, error) {
	level, err := logprinter.ParseLevel(name)
	if err != nil {
		return level, err
	}
	if level == logprinter.LevelNone {
		return level, fmt.Errorf("%s cannot be used as a threshold", name)
	}
	return level, nil
}
