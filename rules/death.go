package rules

// Death records when and why a snake stopped moving.
type Death struct {
	Ticker uint32 `json:"ticker"`
	Cause  string `json:"cause"`
}

// checkForDeath reports whether any non-head segment shares the head's cell.
// Only a completed step can move the head onto a new cell, so this fires on
// the frame right after the step that caused the collision.
func checkForDeath(body []Point) bool {
	if len(body) == 0 {
		return false
	}
	head := body[0]
	for i, b := range body {
		if i == 0 {
			continue
		}
		if deathByBodyCollision(head, b) {
			return true
		}
	}
	return false
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}
