package metrics

import "time"

// GameRecord is one completed game in an experiment run.
type GameRecord struct {
	ID       int
	Players  int
	Seed     uint64
	Winner   string // Empty when the move cap was reached
	Moves    int
	Duration time.Duration
}
