package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/model"
)

func (s *Server) listTemplates(c *gin.Context) {
	templates, err := s.templates.List(c.Request.Context())
	if err != nil {
		writeErr(c, err, "Template not found", "Failed to fetch templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (s *Server) createTemplate(c *gin.Context) {
	var template model.Template
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template body: " + err.Error()})
		return
	}

	created, err := s.templates.Create(c.Request.Context(), &template)
	if err != nil {
		writeErr(c, err, "Template not found", "Failed to create template")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) deleteTemplate(c *gin.Context) {
	if err := s.templates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err, "Template not found", "Failed to delete template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

func (s *Server) applyTemplate(c *gin.Context) {
	created, err := s.templates.Apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err, "Template not found", "Failed to apply template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template applied", "tasks": created})
}
