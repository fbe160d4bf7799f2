// Package server is the stateless HTTP facade over the service layer: one
// route per operation, JSON bodies, camelCase field names.
package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskdeck/internal/config"
	"taskdeck/internal/service"
)

// Server aggregates the services behind the HTTP surface.
type Server struct {
	cfg          config.Config
	tasks        *service.TaskService
	templates    *service.TemplateService
	achievements *service.AchievementService
	stats        *service.StatsService
	files        *service.FileService
	suggest      *service.SuggestService
}

func New(cfg config.Config, tasks *service.TaskService, templates *service.TemplateService,
	achievements *service.AchievementService, stats *service.StatsService,
	files *service.FileService, suggest *service.SuggestService) *Server {
	return &Server{
		cfg:          cfg,
		tasks:        tasks,
		templates:    templates,
		achievements: achievements,
		stats:        stats,
		files:        files,
		suggest:      suggest,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.Static("/uploads", s.cfg.UploadDir)

	api := r.Group("/api")

	api.GET("/tasks", s.listTasks)
	api.POST("/tasks", s.createTask)
	api.GET("/tasks/:id", s.getTask)
	api.PUT("/tasks/:id", s.updateTask)
	api.DELETE("/tasks/:id", s.deleteTask)
	api.GET("/tasks/:id/subtasks", s.listSubtasks)
	api.PATCH("/tasks/:id/sort", s.updateSortOrder)
	api.PATCH("/tasks/:id/time", s.addTime)
	api.GET("/tasks/:id/files", s.listFiles)
	api.POST("/tasks/:id/files", s.uploadFile)

	api.GET("/templates", s.listTemplates)
	api.POST("/templates", s.createTemplate)
	api.DELETE("/templates/:id", s.deleteTemplate)
	api.POST("/templates/:id/apply", s.applyTemplate)

	api.GET("/achievements", s.listAchievements)
	api.POST("/achievements/:id/unlock", s.unlockAchievement)

	api.GET("/stats", s.getStats)
	api.PUT("/stats", s.updateStats)

	api.DELETE("/files/:id", s.deleteFile)

	api.GET("/export", s.exportTasks)
	api.POST("/import", s.importTasks)

	api.POST("/ai/suggest", s.suggestHandler)

	return r
}

// writeErr maps a service or repository error to the response taxonomy:
// 400 for validation failures, 404 for absent entities, 500 otherwise.
func writeErr(c *gin.Context, err error, notFoundMsg, failMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.Printf("[error] %s: %v", failMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
