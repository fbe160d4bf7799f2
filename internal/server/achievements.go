package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listAchievements(c *gin.Context) {
	achievements, err := s.achievements.List(c.Request.Context())
	if err != nil {
		writeErr(c, err, "Achievement not found", "Failed to fetch achievements")
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func (s *Server) unlockAchievement(c *gin.Context) {
	if err := s.achievements.Unlock(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err, "Achievement not found", "Failed to unlock achievement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Achievement unlocked!"})
}
