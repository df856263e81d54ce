package components

// Entity tags
const (
	TagBall         = "ball"
	TagPaddle       = "paddle"
	TagGoal         = "goal"
	TagWall         = "wall"
	TagScoreDisplay = "score_display"
)
