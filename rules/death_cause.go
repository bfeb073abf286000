package rules

const (
	// DeathCauseSnakeSelfCollision is the death reason when the head runs into the snake's own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseBoardFull is when the snake covers every cell and no food can be placed
	DeathCauseBoardFull = "board-full"
)
