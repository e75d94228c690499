package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/config"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/logx"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers failed")
	}
}

func newApp() *cli.App {
	var cfg config.Config

	playCmd := &cli.Command{
		Name:  "play",
		Usage: "read moves and commands (A, P) and print the game transcript",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "file with moves; stdin when empty",
			},
		},
		Action: func(c *cli.Context) error {
			input := cfg.Input
			if c.IsSet("input") {
				input = c.String("input")
			}
			return play(c.App.Reader, c.App.Writer, input)
		},
	}

	return &cli.App{
		Name:  "checkers",
		Usage: "adjudicate and play 8x8 checkers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file to load"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn, error"},
			&cli.StringFlag{Name: "log-format", Usage: "console or json"},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.Load(c.String("env-file"))
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
			}
			if c.IsSet("log-format") {
				cfg.LogFormat = c.String("log-format")
			}
			return logx.Setup(cfg.LogLevel, cfg.LogFormat, c.App.ErrWriter)
		},
		Action: playCmd.Action,
		Commands: []*cli.Command{
			playCmd,
			{
				Name:  "moves",
				Usage: "list the legal moves for a side",
				Flags: positionFlags(),
				Action: func(c *cli.Context) error {
					b, side, err := positionFromFlags(c)
					if err != nil {
						return err
					}
					for _, m := range checkers.LegalMoves(&b, side) {
						fmt.Fprintln(c.App.Writer, m)
					}
					return nil
				},
			},
			{
				Name:  "search",
				Usage: "print the move the engine would play",
				Flags: positionFlags(),
				Action: func(c *cli.Context) error {
					b, side, err := positionFromFlags(c)
					if err != nil {
						return err
					}
					res := engine.NewEngine().Search(b, side, engine.SearchConfig{})
					if !res.Found {
						fmt.Fprintf(c.App.Writer, "%s has no move\n", side)
						return nil
					}
					fmt.Fprintf(c.App.Writer, "%s %s\nBOARD COST: %d\nNODES: %d\n", side, res.BestMove, res.Score, res.Nodes)
					return nil
				},
			},
		},
	}
}

func play(stdin io.Reader, stdout io.Writer, input string) error {
	r := stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	tokens, err := game.ReadTokens(r)
	if err != nil {
		return err
	}

	g := game.NewManager().NewGame()
	log.Debug().Str("game_id", g.ID).Int("tokens", len(tokens)).Msg("starting game")

	err = game.NewSession(g, engine.NewEngine(), stdout).Run(tokens)
	if errors.Is(err, game.ErrHalted) {
		log.Debug().Err(err).Msg("game halted")
		return cli.Exit("", 1)
	}
	return err
}

func positionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "board",
			Aliases: []string{"b"},
			Usage:   "layout as 8 '/'-separated rows of . w W b B, row 1 first; default is the starting position",
		},
		&cli.StringFlag{
			Name:    "side",
			Aliases: []string{"s"},
			Value:   "black",
			Usage:   "black or white",
		},
	}
}

func positionFromFlags(c *cli.Context) (checkers.Board, checkers.Side, error) {
	b := checkers.NewBoard()
	if layout := c.String("board"); layout != "" {
		var err error
		if b, err = checkers.DecodeBoard(layout); err != nil {
			return b, checkers.NoSide, err
		}
	}
	side, err := parseSide(c.String("side"))
	return b, side, err
}

func parseSide(s string) (checkers.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return checkers.Black, nil
	case "white", "w":
		return checkers.White, nil
	}
	return checkers.NoSide, fmt.Errorf("unknown side %q", s)
}
