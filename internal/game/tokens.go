package game

import (
	"bufio"
	"fmt"
	"io"
)

// BatchActions is how many computed actions a batch command plays.
const BatchActions = 10

type TokenKind int

const (
	TokenMove    TokenKind = iota // five characters, e.g. "A6-B5"
	TokenCompute                  // "A": one computed action
	TokenBatch                    // "P": BatchActions computed actions
	TokenUnknown
)

func (k TokenKind) String() string {
	switch k {
	case TokenMove:
		return "move"
	case TokenCompute:
		return "compute"
	case TokenBatch:
		return "batch"
	}
	return "unknown"
}

// Classify sorts a whitespace-free input token. Anything five characters long
// is treated as a move; otherwise the first letter picks the command.
func Classify(tok string) TokenKind {
	if len(tok) == 5 {
		return TokenMove
	}
	if tok == "" {
		return TokenUnknown
	}
	switch tok[0] {
	case 'A':
		return TokenCompute
	case 'P':
		return TokenBatch
	}
	return TokenUnknown
}

// ReadTokens collects whitespace-separated tokens from r. Reading stops right
// after the first command token; anything behind it is never read.
func ReadTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tok := sc.Text()
		tokens = append(tokens, tok)
		if k := Classify(tok); k == TokenCompute || k == TokenBatch {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return tokens, fmt.Errorf("read moves: %w", err)
	}
	return tokens, nil
}
