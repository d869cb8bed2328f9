package game

import "errors"

// Error kinds. Operations wrap these with context, so callers can tell
// them apart with errors.Is.
var (
	// ErrInvalidState: the operation is not legal in the current stage.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument: out-of-range counts, wrong ownership, non-adjacent
	// territories, bad trade amounts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound: a territory handle outside the game's geography.
	ErrNotFound = errors.New("territory not found")
)
