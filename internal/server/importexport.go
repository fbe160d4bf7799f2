package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
)

func (s *Server) exportTasks(c *gin.Context) {
	tasks, err := s.tasks.Export(c.Request.Context())
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to export tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) importTasks(c *gin.Context) {
	var body struct {
		Tasks []model.Task `json:"tasks"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import body: " + err.Error()})
		return
	}

	count, err := s.tasks.Import(c.Request.Context(), body.Tasks)
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to import tasks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tasks imported successfully", "count": count})
}
