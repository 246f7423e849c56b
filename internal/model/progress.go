package model

import (
	"time"
)

// Progress is a timestamped note recording advancement toward a goal.
// UserID comes from the session rather than through the goal, and GoalID
// is stored as submitted; the two are not cross-checked.
type Progress struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	GoalID      string    `db:"goal_id"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
