package dto

import "finance-assistant/internal/models"

// CategoryRequest represents the payload for creating a category
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Type        string `json:"type" validate:"required,category_type"`
	Description string `json:"description" validate:"max=200"`
	UserID      int    `json:"user_id,omitempty"`
}

// SeedCategoriesRequest asks the backend to create its default categories for a user
type SeedCategoriesRequest struct {
	UserID int `json:"user_id"`
}

// CategoryStatsResponse is the backend's category stats envelope
type CategoryStatsResponse struct {
	Categories *[]models.CategoryStat `json:"categories"`
}

// CategoryStatsQuery holds the query parameters of the category stats view
type CategoryStatsQuery struct {
	Period int    `query:"period" json:"period" validate:"omitempty,oneof=7 30 90 365"`
	Filter string `query:"filter" json:"filter" validate:"omitempty,oneof=all income expense"`
}
