package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/render"
)

var (
	// ErrHalted wraps the validation error that stopped a run.
	ErrHalted = errors.New("game halted")
	// ErrGameOver is returned when an action is requested after the game ended.
	ErrGameOver = errors.New("game is over")
)

// Session drives one game: it validates and applies human moves, asks the
// engine for computed ones and renders every step. It owns its board
// exclusively.
type Session struct {
	state  GameState
	engine *engine.Engine
	search [2]engine.SearchConfig // indexed by Side
	out    *render.Renderer
	log    zerolog.Logger
}

// NewSession starts from a copy of g. A nil w discards the transcript.
func NewSession(g *GameState, eng *engine.Engine, w io.Writer) *Session {
	if w == nil {
		w = io.Discard
	}
	if eng == nil {
		eng = engine.NewEngine()
	}
	return &Session{
		state:  *g,
		engine: eng,
		out:    render.New(w),
		log:    log.With().Str("game_id", g.ID).Logger(),
	}
}

// State returns a snapshot of the game.
func (s *Session) State() GameState {
	return s.state
}

// SetSearch changes how ComputeMove searches for side.
func (s *Session) SetSearch(side checkers.Side, cfg engine.SearchConfig) {
	if side == checkers.Black || side == checkers.White {
		s.search[side] = cfg
	}
}

// Run prints the board details and the starting board, then plays tokens in
// order. It stops at the first win, and on an illegal move it prints the
// error and returns an error wrapping ErrHalted.
func (s *Session) Run(tokens []string) error {
	s.out.Details(&s.state.Board)
	s.out.Board(&s.state.Board)

	for _, tok := range tokens {
		if s.state.Status != checkers.Ongoing {
			break
		}
		var err error
		switch kind := Classify(tok); kind {
		case TokenMove:
			err = s.playToken(tok)
		case TokenCompute:
			_, err = s.ComputeMove()
		case TokenBatch:
			for i := 0; i < BatchActions && err == nil && s.state.Status == checkers.Ongoing; i++ {
				_, err = s.ComputeMove()
			}
		default:
			s.log.Warn().Str("token", tok).Msg("skipping unknown token")
			continue
		}
		if err != nil {
			return err
		}
	}
	return s.out.Err()
}

func (s *Session) playToken(tok string) error {
	m, err := checkers.ParseMove(tok)
	if err != nil {
		s.out.Error(err)
		return fmt.Errorf("%w: action %d: %w", ErrHalted, s.state.Action, err)
	}
	return s.PlayMove(m)
}

// PlayMove validates m for the side whose turn it is and applies it. On
// failure the board is left untouched, the error line is printed and the
// returned error wraps both ErrHalted and the validation sentinel.
func (s *Session) PlayMove(m checkers.Move) error {
	if s.state.Status != checkers.Ongoing {
		return ErrGameOver
	}
	side := s.state.SideToMove()
	if err := checkers.Validate(&s.state.Board, m, side); err != nil {
		s.log.Info().Int("action", s.state.Action).Str("move", m.String()).Err(err).Msg("illegal move")
		s.out.Error(err)
		return fmt.Errorf("%w: action %d %s: %w", ErrHalted, s.state.Action, m, err)
	}
	s.apply(m, false)
	return nil
}

// ComputeMove searches for the side to act and plays the result. Unless
// SetSearch said otherwise the search goes TreeDepth plies.
func (s *Session) ComputeMove() (checkers.Move, error) {
	if s.state.Status != checkers.Ongoing {
		return checkers.Move{}, ErrGameOver
	}
	side := s.state.SideToMove()
	res := s.engine.Search(s.state.Board, side, s.search[side])
	if !res.Found {
		return checkers.Move{}, fmt.Errorf("action %d: %s has no move", s.state.Action, side)
	}
	if err := checkers.Validate(&s.state.Board, res.BestMove, side); err != nil {
		panic(fmt.Sprintf("engine produced illegal move %s for %s: %v", res.BestMove, side, err))
	}
	s.apply(res.BestMove, true)
	return res.BestMove, nil
}

// Autoplay lets the engine play both sides until the game ends, limit
// actions have been played or ctx is done.
func (s *Session) Autoplay(ctx context.Context, limit int) (checkers.GameStatus, error) {
	for played := 0; played < limit && s.state.Status == checkers.Ongoing; played++ {
		if err := ctx.Err(); err != nil {
			return s.state.Status, err
		}
		if _, err := s.ComputeMove(); err != nil {
			return s.state.Status, err
		}
	}
	return s.state.Status, s.out.Err()
}

func (s *Session) apply(m checkers.Move, computed bool) {
	action := s.state.Action
	checkers.Apply(&s.state.Board, m)
	cost := engine.Cost(&s.state.Board)
	s.out.Action(action, m, computed, cost, &s.state.Board)

	s.state.Action++
	s.state.Status = checkers.Status(&s.state.Board)
	s.log.Debug().
		Int("action", action).
		Str("move", m.String()).
		Bool("computed", computed).
		Int("cost", cost).
		Stringer("status", s.state.Status).
		Msg("action applied")

	if s.state.Status != checkers.Ongoing {
		s.out.Winner(s.state.Status)
		s.log.Info().Stringer("status", s.state.Status).Int("actions", action).Msg("game over")
	}
}
