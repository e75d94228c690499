package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
)

func TestPlayMatch(t *testing.T) {
	mgr := game.NewManager()
	a := PlayerConfig{Name: "a", Cfg: engine.SearchConfig{MaxDepth: 2}}
	b := PlayerConfig{Name: "b", Cfg: engine.SearchConfig{MaxDepth: 1}}

	results, err := playMatch(context.Background(), mgr, a, b, matchConfig{
		games:      4,
		maxActions: 40,
		openings:   2,
		parallel:   2,
		seed:       7,
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	games := mgr.List()
	require.Len(t, games, 4)
	for i, r := range results {
		require.Equal(t, i%2 == 0, r.aIsBlack)
		require.LessOrEqual(t, r.actions, 40)
		require.Positive(t, r.actions)
	}
	for _, g := range games {
		require.Greater(t, g.Action, 1)
	}

	var out bytes.Buffer
	report(&out, a, b, results)
	require.Contains(t, out.String(), "=== Final Score ===")
}

func TestPlayMatchIsReproducible(t *testing.T) {
	mc := matchConfig{games: 2, maxActions: 20, openings: 3, parallel: 2, seed: 3}
	a := PlayerConfig{Name: "a", Cfg: engine.SearchConfig{MaxDepth: 1}}

	first, err := playMatch(context.Background(), game.NewManager(), a, a, mc)
	require.NoError(t, err)
	second, err := playMatch(context.Background(), game.NewManager(), a, a, mc)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPlayMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := PlayerConfig{Name: "a", Cfg: engine.SearchConfig{MaxDepth: 1}}
	_, err := playMatch(ctx, game.NewManager(), a, a, matchConfig{games: 2, maxActions: 20, parallel: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBench(t *testing.T) {
	positions := benchPositions(3, 6, 1)
	require.Len(t, positions, 3)
	require.Equal(t, checkers.NewBoard(), positions[0].board)

	rows := runBench(positions, 2)
	require.Len(t, rows, 2)
	require.Less(t, rows[0].Nodes, rows[1].Nodes)

	var out bytes.Buffer
	printBench(&out, rows)
	require.Contains(t, out.String(), "Depth")
}
