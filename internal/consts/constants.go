package consts

import (
	"path/filepath"
)

// Constants for the command line front end
const (
	AppName         = "logprinter"
	Version         = "v1.0"
	Author          = "mkow04"
	Email           = "maciejkowalski04@proton.me"
	DefaultStateDir = "~/.local/state"
	DefaultEnvFile  = ".env"
	BannerWidth     = 48
)

// Environment variables read by the command line front end. The library
// itself never reads the environment.
const (
	EnvDir        = "LOGPRINTER_DIR"
	EnvLevel      = "LOGPRINTER_LEVEL"
	EnvFileLevel  = "LOGPRINTER_FILE_LEVEL"
	EnvTimezone   = "LOGPRINTER_TZ"
	EnvDateFormat = "LOGPRINTER_DATE_FORMAT"
	EnvNoTime     = "LOGPRINTER_NO_TIME"
	EnvQuiet      = "LOGPRINTER_QUIET"
	EnvNoRaise    = "LOGPRINTER_NO_RAISE"
)

// GetDefaultLogDir returns the suggested session log directory
func GetDefaultLogDir() string {
	return filepath.Join(DefaultStateDir, AppName)
}
