// Command neutron plays Neutron for two players sharing one terminal.
//
// It supports two commands:
//  1. "play" (default) – plays one game on a preset board or an explicit size
//  2. "presets" – lists the available board presets; "presets validate"
//     checks the JSON files in --preset-dir
//
// Flags can also be set through NEUTRON_* environment variables, which are
// read from a .env file in the working directory when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/neutron/game/config"
	"github.com/wricardo/neutron/game/engine"
	"github.com/wricardo/neutron/transport/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Neutron"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("error loading .env file")
	}

	if err := newCommand(log, os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("neutron failed")
	}
}

// newCommand builds the command tree. Input and output are injected so tests
// can drive a whole game.
func newCommand(log *logrus.Logger, in io.Reader, out io.Writer) *cli.Command {
	play := func(ctx context.Context, cmd *cli.Command) error {
		return runGame(cmd, log, in, out)
	}
	var logFile io.Closer

	return &cli.Command{
		Name:    "neutron",
		Usage:   "play Neutron for two players on one terminal",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   "board preset to play on (default: the default preset)",
				Sources: cli.EnvVars("NEUTRON_PRESET"),
			},
			&cli.StringFlag{
				Name:    "default-preset",
				Usage:   "preset used when --preset is not given",
				Value:   "classic",
				Sources: cli.EnvVars("NEUTRON_DEFAULT_PRESET"),
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "explicit board size (odd, at least 3); overrides --preset",
				Sources: cli.EnvVars("NEUTRON_SIZE"),
			},
			&cli.StringFlag{
				Name:    "preset-dir",
				Usage:   "directory of additional JSON presets",
				Sources: cli.EnvVars("NEUTRON_PRESET_DIR"),
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable coloured output",
				Sources: cli.EnvVars("NEUTRON_NO_COLOR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("NEUTRON_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to this file instead of stderr",
				Sources: cli.EnvVars("NEUTRON_LOG_FILE"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			f, err := setupLogging(cmd, log)
			if err != nil {
				return ctx, err
			}
			logFile = f
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if logFile == nil {
				return nil
			}
			return logFile.Close()
		},
		Action: play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play one game (default)",
				Action: play,
			},
			{
				Name:  "presets",
				Usage: "list available board presets",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return listPresets(cmd, out)
				},
				Commands: []*cli.Command{
					{
						Name:      "validate",
						Usage:     "validate preset JSON files",
						ArgsUsage: "[file...]",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return validatePresets(cmd, log, out)
						},
					},
				},
			},
		},
	}
}

// setupLogging applies --debug and --log-file. The returned file, if any, is
// owned by the caller.
func setupLogging(cmd *cli.Command, log *logrus.Logger) (io.Closer, error) {
	if cmd.Bool("debug") {
		log.SetLevel(logrus.DebugLevel)
	}
	path := cmd.String("log-file")
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	return f, nil
}

// newPresetManager creates the preset manager for --preset-dir with
// --default-preset as its default
func newPresetManager(cmd *cli.Command) (*config.Manager, error) {
	manager, err := config.NewManager(cmd.String("preset-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to create preset manager: %w", err)
	}
	if id := cmd.String("default-preset"); id != "" {
		if err := manager.SetDefault(id); err != nil {
			return nil, fmt.Errorf("failed to set default preset %s: %w", id, err)
		}
	}
	return manager, nil
}

// newGame creates the game selected by --size, --preset or the default preset
func newGame(cmd *cli.Command) (*engine.Game, error) {
	if cmd.IsSet("size") {
		game, err := engine.NewGame(int(cmd.Int("size")))
		if err != nil {
			return nil, fmt.Errorf("invalid size %d: %w", cmd.Int("size"), err)
		}
		return game, nil
	}

	manager, err := newPresetManager(cmd)
	if err != nil {
		return nil, err
	}
	preset := manager.GetDefault()
	if id := cmd.String("preset"); id != "" {
		preset, err = manager.LoadPreset(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load preset %s: %w", id, err)
		}
	}
	return engine.NewGameFromPreset(preset)
}

// runGame plays one game to the end and announces the winner
func runGame(cmd *cli.Command, log *logrus.Logger, in io.Reader, out io.Writer) error {
	game, err := newGame(cmd)
	if err != nil {
		return err
	}
	game.WithLogger(log)

	term := terminal.New(in, out, terminal.Options{
		Color:       !cmd.Bool("no-color") && isTerminal(out),
		ClearScreen: isTerminal(out),
	})

	winner, err := game.Play(term)
	if err != nil {
		return fmt.Errorf("game %s: %w", game.ID(), err)
	}
	term.AnnounceWinner(winner)
	return nil
}

// listPresets prints the presets known to the preset manager. The default
// preset is marked with a star.
func listPresets(cmd *cli.Command, out io.Writer) error {
	manager, err := newPresetManager(cmd)
	if err != nil {
		return err
	}
	presets, err := manager.ListPresets()
	if err != nil {
		return err
	}
	def := manager.GetDefault()
	for _, p := range presets {
		mark := " "
		if loaded, err := manager.LoadPreset(p.ID); err == nil && loaded == def {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %-12s %2dx%-2d  %s\n", mark, p.ID, p.Size, p.Size, p.Description)
	}
	return nil
}

// validatePresets checks the files given as arguments, or every preset file
// in --preset-dir when there are none
func validatePresets(cmd *cli.Command, log *logrus.Logger, out io.Writer) error {
	var results []config.ValidationResult
	if cmd.Args().Present() {
		for _, file := range cmd.Args().Slice() {
			results = append(results, config.ValidateFile(file))
		}
	} else {
		dir := cmd.String("preset-dir")
		if dir == "" {
			return errors.New("nothing to validate: pass files or --preset-dir")
		}
		var err error
		results, err = config.ValidateDir(dir)
		if err != nil {
			return err
		}
	}

	invalid := 0
	for _, result := range results {
		status := "ok"
		if !result.Valid {
			status = "INVALID"
			invalid++
		}
		fmt.Fprintf(out, "%-20s %s\n", result.File, status)
		for _, msg := range result.Messages {
			fmt.Fprintf(out, "    %s\n", msg)
		}
		log.WithFields(logrus.Fields{"file": result.File, "valid": result.Valid}).Debug("preset validated")
	}
	fmt.Fprintf(out, "%d file(s), %d invalid\n", len(results), invalid)

	if invalid > 0 {
		return fmt.Errorf("%d invalid preset file(s)", invalid)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(f)
}
