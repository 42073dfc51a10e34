// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"playto/internal/models"
	"playto/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:id/like. Liking an already-liked post is
// a no-op: the response reports liked=false and the unchanged count.
func (s *Server) LikePost(c *fiber.Ctx) error {
	return s.likeOn(c, models.LikeTargetPost)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	return s.likeOff(c, models.LikeTargetPost)
}

// LikeComment handles POST /api/comments/:id/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	return s.likeOn(c, models.LikeTargetComment)
}

// UnlikeComment handles DELETE /api/comments/:id/like
func (s *Server) UnlikeComment(c *fiber.Ctx) error {
	return s.likeOff(c, models.LikeTargetComment)
}

func (s *Server) likeOn(c *fiber.Ctx, kind models.LikeTargetKind) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.likeService.LikeOn(ctx, service.LikeInput{
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"liked":      result.Created,
		"like_count": result.LikeCount,
	})
}

func (s *Server) likeOff(c *fiber.Ctx, kind models.LikeTargetKind) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.likeService.LikeOff(ctx, service.LikeInput{
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"unliked":    result.Removed,
		"like_count": result.LikeCount,
	})
}
