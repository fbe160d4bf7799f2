package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
)

func (s *Server) listTasks(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) getTask(c *gin.Context) {
	task, err := s.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) listSubtasks(c *gin.Context) {
	subtasks, err := s.tasks.ListSubtasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to fetch subtasks")
		return
	}
	c.JSON(http.StatusOK, subtasks)
}

func (s *Server) createTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task body: " + err.Error()})
		return
	}

	created, err := s.tasks.Create(c.Request.Context(), &task)
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task body: " + err.Error()})
		return
	}

	updated, err := s.tasks.Update(c.Request.Context(), c.Param("id"), &task)
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) updateSortOrder(c *gin.Context) {
	var body struct {
		SortOrder int `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort body: " + err.Error()})
		return
	}

	if err := s.tasks.UpdateSortOrder(c.Request.Context(), c.Param("id"), body.SortOrder); err != nil {
		writeErr(c, err, "Task not found", "Failed to update sort order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sort order updated"})
}

func (s *Server) addTime(c *gin.Context) {
	var body struct {
		TimeSpent int `json:"timeSpent"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time body: " + err.Error()})
		return
	}

	if err := s.tasks.AddTime(c.Request.Context(), c.Param("id"), body.TimeSpent); err != nil {
		writeErr(c, err, "Task not found", "Failed to update time")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time updated"})
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err, "Task not found", "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
