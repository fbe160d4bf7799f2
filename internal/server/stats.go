package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
)

func (s *Server) getStats(c *gin.Context) {
	stats, err := s.stats.Get(c.Request.Context())
	if err != nil {
		writeErr(c, err, "Stats not found", "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) updateStats(c *gin.Context) {
	var stats model.UserStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stats body: " + err.Error()})
		return
	}

	if err := s.stats.Overwrite(c.Request.Context(), &stats); err != nil {
		writeErr(c, err, "Stats not found", "Failed to update stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stats updated"})
}
