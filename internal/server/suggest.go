package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
)

func (s *Server) suggestHandler(c *gin.Context) {
	var body struct {
		Tasks   []model.Task `json:"tasks"`
		Context string       `json:"context"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid suggest body: " + err.Error()})
		return
	}

	result, err := s.suggest.Suggest(c.Request.Context(), body.Tasks, body.Context)
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to get suggestions")
		return
	}
	c.JSON(http.StatusOK, result)
}
