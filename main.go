// Command assemblage inspects rule sets and plays Assemblage games from the terminal.
//
// Subcommands:
//   - rulesets: list the rule sets found in the config directory
//   - catalog: print the card table of a rule set with its rotated sides
//   - validate: check rule set files and report one line per file
//   - simulate: play a full game with computer strategies and print the scores
//
// The config directory comes from --config-dir, the CONFIG_DIR environment
// variable, or defaults to "configs". A .env file in the working directory is
// loaded before flags are parsed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "assemblage"
)

// app carries the state shared by subcommands once flags are parsed
type app struct {
	logger *logrus.Logger
}

func main() {
	logger := logrus.New()

	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Warn("Error loading .env file")
		}
	} else {
		logger.Debug("Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{logger: logger}
	if err := a.command().Run(ctx, os.Args); err != nil {
		logger.Fatal(err)
	}
}

// command builds the root command and its subcommands
func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "Rules engine tooling for the Assemblage tile-connection card game",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing rule set files",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "log format: text or json",
			},
		},
		Before: a.setupLogging,
		Commands: []*cli.Command{
			a.rulesetsCommand(),
			a.catalogCommand(),
			a.validateCommand(),
			a.simulateCommand(),
		},
	}
}

// setupLogging applies the logging flags to the shared logger
func (a *app) setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if a.logger == nil {
		a.logger = logrus.New()
	}

	var out io.Writer = os.Stderr
	if cmd.Root().ErrWriter != nil {
		out = cmd.Root().ErrWriter
	}
	a.logger.SetOutput(out)

	if cmd.Bool("debug") {
		a.logger.SetLevel(logrus.DebugLevel)
	}

	switch format := cmd.String("log-format"); format {
	case "json":
		a.logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		a.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return ctx, fmt.Errorf("unknown log format: %s", format)
	}

	a.logger.WithField("version", Version).Debug("Starting " + AppName)
	return ctx, nil
}
