package models

const (
	GoalStatusInProgress = "in_progress"
	GoalStatusCompleted  = "completed"
	GoalStatusOnHold     = "on_hold"
)

const (
	GoalPriorityHigh   = 1
	GoalPriorityMedium = 2
	GoalPriorityLow    = 3
)

// Goal is a savings goal owned by the backend
type Goal struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	TargetAmount  Amount `json:"target_amount"`
	CurrentAmount Amount `json:"current_amount"`
	Deadline      string `json:"deadline"`
	Priority      int    `json:"priority"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// IsActive reports whether the goal still counts as open. Only "completed"
// closes a goal; unknown statuses count as active.
func (g Goal) IsActive() bool {
	return g.Status != GoalStatusCompleted
}

// IsValidGoalStatus checks if status is one of the known goal statuses
func IsValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusInProgress, GoalStatusCompleted, GoalStatusOnHold:
		return true
	default:
		return false
	}
}

// GoalWithProgress is a goal decorated with the derived progress fields shown in the goals list
type GoalWithProgress struct {
	Goal
	ProgressPercent float64 `json:"progress_percent"`
	DaysRemaining   int     `json:"days_remaining"`
	PriorityLabel   string  `json:"priority_label"`
	Overdue         bool    `json:"overdue"`
}
