package rules

// GameStatus is the coarse state of a round.
type GameStatus string

const (
	// GameStatusRunning represents a snake that is still moving
	GameStatusRunning GameStatus = "running"
	// GameStatusDead represents a snake that is frozen in place after dying
	GameStatusDead GameStatus = "dead"
)
