package game

// Stage is the engine's current phase. Every mutating operation is legal
// in exactly one stage (Skip in two) and fails with ErrInvalidState
// anywhere else.
type Stage int

const (
	// StageInitializing only exists before NewGame finishes; callers never see it.
	StageInitializing Stage = iota
	StageClaim
	StagePopulate
	StageDraft
	StageAttack
	StageInvade
	StageManeuver
	StageFinished
)

func (s Stage) String() string {
	switch s {
	case StageInitializing:
		return "Initializing"
	case StageClaim:
		return "Claim"
	case StagePopulate:
		return "Populate"
	case StageDraft:
		return "Draft"
	case StageAttack:
		return "Attack"
	case StageInvade:
		return "Invade"
	case StageManeuver:
		return "Maneuver"
	case StageFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}
