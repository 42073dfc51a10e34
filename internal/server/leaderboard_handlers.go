// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"playto/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard handles GET /api/leaderboard?limit=N. Users are ranked by
// karma earned from likes created inside the rolling window (24h by
// default); ties break by lower user ID.
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	board, err := s.karmaService.TopUsers(ctx, service.LeaderboardInput{
		Limit: c.QueryInt("limit", 0),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(board)
}
