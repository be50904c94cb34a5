package dto

import "finance-assistant/internal/models"

// GoalRequest represents the payload for creating or updating a savings goal
type GoalRequest struct {
	Name          string        `json:"name" validate:"required,max=100"`
	Description   string        `json:"description" validate:"max=200"`
	TargetAmount  models.Amount `json:"target_amount" validate:"required,money"`
	CurrentAmount models.Amount `json:"current_amount" validate:"omitempty,gte=0"`
	Deadline      string        `json:"deadline" validate:"required,iso_date"`
	Priority      int           `json:"priority" validate:"omitempty,oneof=1 2 3"`
	Status        string        `json:"status" validate:"omitempty,goal_status"`
	CreatedAt     string        `json:"created_at,omitempty"`
	UserID        int           `json:"user_id,omitempty"`
}

// ToModel returns the goal the request describes, with the given id
func (r GoalRequest) ToModel(id int) models.Goal {
	return models.Goal{
		ID:            id,
		UserID:        r.UserID,
		Name:          r.Name,
		Description:   r.Description,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      r.Deadline,
		Priority:      r.Priority,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

// ListGoalsResponse is the backend's goal list envelope
type ListGoalsResponse struct {
	Goals *[]models.Goal `json:"goals"`
}
