package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every API handler registered under /api/v1
type Handlers struct {
	Dashboard    *DashboardHandler
	Chat         *ChatHandler
	Transactions *TransactionHandler
	Goals        *GoalHandler
	Categories   *CategoryHandler
	Analytics    *AnalyticsHandler
}

// RegisterRoutes mounts the API on g
func RegisterRoutes(g *echo.Group, h Handlers) {
	g.GET("/dashboard", h.Dashboard.GetSummary)

	chat := g.Group("/chat/sessions")
	chat.POST("", h.Chat.StartSession)
	chat.GET("/:id", h.Chat.GetSession)
	chat.POST("/:id/messages", h.Chat.SendMessage)
	chat.POST("/:id/reset", h.Chat.ResetSession)
	chat.DELETE("/:id", h.Chat.EndSession)

	g.GET("/transactions", h.Transactions.ListTransactions)
	g.POST("/transactions", h.Transactions.CreateTransaction)
	g.PATCH("/transactions/:id", h.Transactions.UpdateTransaction)
	g.DELETE("/transactions/:id", h.Transactions.DeleteTransaction)

	g.GET("/goals", h.Goals.ListGoals)
	g.POST("/goals", h.Goals.CreateGoal)
	g.PATCH("/goals/:id", h.Goals.UpdateGoal)
	g.DELETE("/goals/:id", h.Goals.DeleteGoal)

	g.GET("/categories/stats", h.Categories.GetStats)
	g.POST("/categories/seed", h.Categories.SeedCategories)
	g.POST("/categories", h.Categories.CreateCategory)
	g.DELETE("/categories/:id", h.Categories.DeleteCategory)

	g.GET("/analytics", h.Analytics.GetReport)
}
