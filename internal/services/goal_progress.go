package services

import (
	"math"
	"time"

	"finance-assistant/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GoalProgress derives the progress fields shown next to a goal
func GoalProgress(goal models.Goal, now time.Time) models.GoalWithProgress {
	view := models.GoalWithProgress{
		Goal:            goal,
		ProgressPercent: ProgressPercent(goal.CurrentAmount, goal.TargetAmount),
		PriorityLabel:   PriorityLabel(goal.Priority),
	}

	if deadline, ok := models.ParseDate(goal.Deadline); ok {
		view.DaysRemaining = DaysRemaining(deadline, now)
		view.Overdue = view.DaysRemaining < 0 && goal.Status != models.GoalStatusCompleted
	}

	return view
}

// ProgressPercent is current/target as a percentage rounded to 2 places,
// capped at 100. A non-positive or invalid target gives 0.
func ProgressPercent(current, target models.Amount) float64 {
	if !target.Valid || !target.Value.IsPositive() {
		return 0
	}

	pct := current.OrZero().Div(target.Value).Mul(hundred)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	if pct.IsNegative() {
		pct = decimal.Zero
	}

	f, _ := pct.Round(2).Float64()
	return f
}

// DaysRemaining rounds the time left until deadline up to whole days; past deadlines are negative
func DaysRemaining(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

func PriorityLabel(priority int) string {
	switch priority {
	case models.GoalPriorityHigh:
		return "High"
	case models.GoalPriorityMedium:
		return "Medium"
	case models.GoalPriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}
