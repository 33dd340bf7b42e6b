package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/patchank/assemblage/game/autoplay"
	"github.com/patchank/assemblage/game/config"
	"github.com/patchank/assemblage/game/engine"
)

// manager opens the rule set manager over the configured directory
func (a *app) manager(cmd *cli.Command) (*config.Manager, error) {
	return config.NewManager(cmd.Root().String("config-dir"), a.logger)
}

func (a *app) rulesetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rulesets",
		Usage: "list available rule sets",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := a.manager(cmd)
			if err != nil {
				return err
			}
			infos, err := m.ListRuleSets()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLAYOUT\tCODES\tSOURCE")
			for _, info := range infos {
				source := info.Filename
				if info.BuiltIn {
					source = "built-in"
				}
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\n", info.ID, info.Name, info.Rows, info.Cols, info.Codes, source)
			}
			return w.Flush()
		},
	}
}

func (a *app) catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "print the cards of a rule set with their sides in every rotation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ruleset", Value: config.StandardName, Usage: "rule set id"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := a.manager(cmd)
			if err != nil {
				return err
			}
			catalog, rules, err := m.Build(cmd.String("ruleset"))
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			fmt.Fprintf(out, "%d cards for a %dx%d layout, size bonus %d\n\n",
				catalog.TotalCount(), rules.Rows, rules.Cols, rules.SizeBonus)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprint(w, "CODE\tCATEGORY\tPOINTS\tCOUNT")
			for _, r := range engine.Rotations {
				fmt.Fprintf(w, "\t%d°", r)
			}
			fmt.Fprintln(w)
			for _, def := range catalog.Definitions() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d", def.Code, def.Category, def.Points, def.Count)
				for _, r := range engine.Rotations {
					s := catalog.RotatedSides(def.Code, r)
					fmt.Fprintf(w, "\t%d %d %d %d", s.Top, s.Right, s.Bottom, s.Left)
				}
				fmt.Fprintln(w)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nSides are listed top right bottom left.")
			return nil
		},
	}
}

func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "validate rule set files (defaults to every file in the config directory)",
		ArgsUsage: "[files...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				matches, err := filepath.Glob(filepath.Join(cmd.Root().String("config-dir"), "*.json"))
				if err != nil {
					return fmt.Errorf("error finding rule set files: %w", err)
				}
				files = matches
			}
			if len(files) == 0 {
				return fmt.Errorf("no rule set files to validate")
			}

			out := cmd.Root().Writer
			invalid := 0
			for _, file := range files {
				rs, err := config.LoadFile(file)
				if err != nil {
					invalid++
					fmt.Fprintf(out, "INVALID %s: %v\n", file, err)
					continue
				}
				fmt.Fprintf(out, "VALID   %s (%s, %dx%d)\n", file, rs.Name, rs.Rules.Rows, rs.Rules.Cols)
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d rule set files are invalid", invalid, len(files))
			}
			return nil
		},
	}
}

func (a *app) simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "play a full game with computer strategies",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ruleset", Value: config.StandardName, Usage: "rule set id"},
			&cli.IntFlag{Name: "players", Value: 2, Usage: "number of players"},
			&cli.IntFlag{Name: "seed", Usage: "random seed (0 picks one from the clock)"},
			&cli.StringFlag{Name: "strategy", Value: autoplay.StrategyGreedy, Usage: "random or greedy"},
			&cli.StringFlag{Name: "out", Usage: "write the final game state as JSON to this file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := a.manager(cmd)
			if err != nil {
				return err
			}
			catalog, rules, err := m.Build(cmd.String("ruleset"))
			if err != nil {
				return err
			}

			seed := int64(cmd.Int("seed"))
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			e, err := engine.NewEngine(catalog, rules, rng)
			if err != nil {
				return err
			}
			strategy, err := autoplay.NewStrategy(cmd.String("strategy"), rand.New(rand.NewSource(seed+1)))
			if err != nil {
				return err
			}

			count := int(cmd.Int("players"))
			players := make([]engine.Player, count)
			for i := range players {
				players[i] = engine.Player{ID: fmt.Sprintf("p%d", i+1), JoinOrder: i}
			}
			state, err := e.CreateInitialState(players)
			if err != nil {
				return err
			}

			a.logger.WithFields(logrus.Fields{
				"ruleset":  cmd.String("ruleset"),
				"seed":     seed,
				"players":  count,
				"strategy": strategy.Name(),
			}).Info("Starting simulation")

			res, err := autoplay.NewRunner(e, strategy, a.logger).Play(ctx, state)
			if err != nil {
				return err
			}

			printScores(cmd, res)

			if path := cmd.String("out"); path != "" {
				data, err := json.MarshalIndent(res.Final, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal game state: %w", err)
				}
				if err := os.WriteFile(path, data, 0644); err != nil {
					return fmt.Errorf("failed to write game state: %w", err)
				}
				a.logger.WithField("path", path).Info("Wrote final game state")
			}
			return nil
		},
	}
}

// printScores writes the per-player breakdown of a finished game
func printScores(cmd *cli.Command, res *autoplay.Result) {
	out := cmd.Root().Writer
	fmt.Fprintf(out, "Game finished after %d moves\n\n", len(res.Turns))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tENSEMBLES\tCOMPLETE\tLARGEST\tSUBTOTAL\tBONUS\tTOTAL")
	for _, bs := range res.Scores {
		complete := 0
		for _, es := range bs.Ensembles {
			if es.Complete {
				complete++
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			bs.PlayerID, len(bs.Ensembles), complete, bs.LargestComplete, bs.Subtotal, bs.Bonus, bs.Total)
	}
	w.Flush()

	fmt.Fprintf(out, "\nWinner: %s\n", res.Final.WinnerPlayerID)
}
