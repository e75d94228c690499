package engine

// TreeDepth is the fixed number of plies the computer player looks ahead.
const TreeDepth = 3

// Engine runs searches and keeps counters for the last one.
// It holds no positional state between searches.
type Engine struct {
	nodes int64
}

func NewEngine() *Engine {
	return &Engine{}
}

// Nodes is the number of positions visited by the most recent search.
func (e *Engine) Nodes() int64 {
	return e.nodes
}
