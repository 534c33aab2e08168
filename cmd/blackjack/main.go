package main

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/display"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Name   string `short:"n" help:"Player name (skips the name prompt)" env:"BLACKJACK_NAME"`
	Seed   int64  `help:"Deck shuffle seed, 0 shuffles from the clock" env:"BLACKJACK_SEED"`
	Config string `short:"c" help:"Path to HCL config file" default:"blackjack.hcl" env:"BLACKJACK_CONFIG"`
	TUI    bool   `help:"Play in the full-screen TUI"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player terminal blackjack against the house"),
		kong.UsageOnError(),
	)
	err := run(cli)
	ctx.FatalIfErrorf(err)
}

func run(cli CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cli.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Flags win over the config file
	name := cfg.Player.Name
	if cli.Name != "" {
		name = cli.Name
	}
	seed := cfg.Game.Seed
	if cli.Seed != 0 {
		seed = cli.Seed
	}

	// Game output owns the terminal, so debug logging goes to a file
	debugFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
		Level:           level,
	})

	rng := randutil.NewFromTime()
	if seed != 0 {
		rng = randutil.New(seed)
	}
	logger.Info("starting session", "seed", seed, "tui", cli.TUI)

	pause := time.Duration(cfg.Game.DealerDelayMs) * time.Millisecond
	if cli.TUI {
		return runTUI(logger, rng, name, pause)
	}
	return runConsole(logger, rng, name, pause)
}

func runConsole(logger *log.Logger, rng *rand.Rand, name string, pause time.Duration) error {
	fmt.Print(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	ui := display.NewConsole(os.Stdin, os.Stdout, logger)
	sess := game.NewSession(ui, logger, rng,
		game.WithPlayerName(name),
		game.WithSessionDealerPause(pause),
	)
	return sess.Run()
}

func runTUI(logger *log.Logger, rng *rand.Rand, name string, pause time.Duration) error {
	ui := tui.NewInterface(logger)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		if err := ui.Close(); err != nil {
			log.Error("Failed to close interface", "error", err)
		}
		os.Exit(0)
	}()

	sess := game.NewSession(ui, logger, rng,
		game.WithPlayerName(name),
		game.WithSessionDealerPause(pause),
	)

	var g errgroup.Group
	g.Go(ui.Run)
	g.Go(func() error {
		defer func() {
			if err := ui.Close(); err != nil {
				logger.Error("Failed to close interface", "error", err)
			}
		}()
		if err := sess.Run(); err != nil && !errors.Is(err, tui.ErrInterrupted) {
			return err
		}
		return nil
	})
	return g.Wait()
}
