// Package config resolves runtime settings from flags, HOOPS_* environment
// variables and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tomz197/hoops/internal/score"
)

// AppName names the application data location and the env prefix.
const AppName = "hoops"

// Storage backends
const (
	StorageDir   = "dir"
	StorageGdata = "gdata"
)

// Setting keys. Flags use the same names; env vars are HOOPS_ + upper snake case.
const (
	KeyDataDir     = "data-dir"
	KeyStorage     = "storage"
	KeyMaxTime     = "max-time"
	KeyTargetScore = "target-score"
	KeyLogFile     = "log-file"
	KeyLogLevel    = "log-level"
)

// ErrInvalid is returned for settings that are out of range.
var ErrInvalid = errors.New("invalid setting")

// Settings are the resolved runtime settings.
type Settings struct {
	DataDir     string
	Storage     string
	MaxTime     time.Duration
	TargetScore int
	LogFile     string // Empty discards logs
	LogLevel    string
}

// New returns a viper instance reading HOOPS_* variables, with defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDataDir, score.DefaultDataDir)
	v.SetDefault(KeyStorage, StorageDir)
	v.SetDefault(KeyMaxTime, score.DefaultMaxTime)
	v.SetDefault(KeyTargetScore, score.DefaultTargetScore)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// BindFlags registers the setting flags on fs and binds them to v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(KeyDataDir, score.DefaultDataDir, "directory for hs.txt and highScores.txt")
	fs.String(KeyStorage, StorageDir, "score storage: dir or gdata")
	fs.Duration(KeyMaxTime, score.DefaultMaxTime, "session length")
	fs.Int(KeyTargetScore, score.DefaultTargetScore, "score needed for the first level-up")
	fs.String(KeyLogFile, "", "write logs to this file")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn or error")

	for _, key := range []string{KeyDataDir, KeyStorage, KeyMaxTime, KeyTargetScore, KeyLogFile, KeyLogLevel} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

// Load reads and validates the settings.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		DataDir:     v.GetString(KeyDataDir),
		Storage:     strings.ToLower(v.GetString(KeyStorage)),
		MaxTime:     v.GetDuration(KeyMaxTime),
		TargetScore: v.GetInt(KeyTargetScore),
		LogFile:     v.GetString(KeyLogFile),
		LogLevel:    v.GetString(KeyLogLevel),
	}

	switch {
	case s.Storage != StorageDir && s.Storage != StorageGdata:
		return s, fmt.Errorf("%w: %s %q", ErrInvalid, KeyStorage, s.Storage)
	case s.MaxTime <= 0:
		return s, fmt.Errorf("%w: %s must be positive", ErrInvalid, KeyMaxTime)
	case s.TargetScore <= 0:
		return s, fmt.Errorf("%w: %s must be positive", ErrInvalid, KeyTargetScore)
	case s.Storage == StorageDir && s.DataDir == "":
		return s, fmt.Errorf("%w: %s is empty", ErrInvalid, KeyDataDir)
	}
	return s, nil
}

// OpenStore opens the score store selected by the settings.
func (s Settings) OpenStore() (score.Store, error) {
	if s.Storage == StorageGdata {
		return score.OpenGdataStore(AppName)
	}
	return score.NewDirStore(s.DataDir), nil
}
