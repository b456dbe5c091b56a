package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tomz197/hoops/internal/config"
	"github.com/tomz197/hoops/internal/loop"
	"github.com/tomz197/hoops/internal/score"
)

func main() {
	cmd, err := newRootCmd()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "hoops: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	v := config.New()

	cmd := &cobra.Command{
		Use:           "hoops",
		Short:         "Terminal basketball: shoot, chase the ball, beat the clock",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := config.Load(v)
			if err != nil {
				return err
			}
			return play(s)
		},
	}
	if err := config.BindFlags(cmd.PersistentFlags(), v); err != nil {
		return nil, err
	}

	cmd.AddCommand(newScoresCmd(v))
	return cmd, nil
}

func newScoresCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Print the high score and the top scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(s)
			if err != nil {
				return err
			}
			defer closeLog()

			store, err := s.OpenStore()
			if err != nil {
				return err
			}
			tracker := score.NewTracker(store, nil, logger, score.Options{})
			tracker.Load()

			return printScores(cmd.OutOrStdout(), tracker)
		},
	}
}

func printScores(w io.Writer, t *score.Tracker) error {
	if _, err := fmt.Fprintf(w, "High Score: %d\n", t.HighScore()); err != nil {
		return err
	}
	for i, s := range t.HighScores() {
		if _, err := fmt.Fprintf(w, "%d. %d\n", i+1, s); err != nil {
			return err
		}
	}
	return nil
}

func play(s config.Settings) error {
	logger, closeLog, err := newLogger(s)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := s.OpenStore()
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("starting", "storage", s.Storage, "maxTime", s.MaxTime, "target", s.TargetScore)
	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Store:       store,
		Logger:      logger,
		MaxTime:     s.MaxTime,
		TargetScore: s.TargetScore,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// newLogger opens the log file named in the settings. Without one, logs are
// discarded: the game owns the terminal.
func newLogger(s config.Settings) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", config.ErrInvalid, err)
	}
	if s.LogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          config.AppName,
	})
	return logger, f.Close, nil
}
