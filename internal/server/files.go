package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listFiles(c *gin.Context) {
	files, err := s.files.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to fetch files")
		return
	}
	c.JSON(http.StatusOK, files)
}

func (s *Server) uploadFile(c *gin.Context) {
	// Cap the request body one MiB above the file ceiling so the multipart
	// envelope still fits while an oversized payload is cut off early.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes+(1<<20))

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer src.Close()

	file, err := s.files.Save(c.Request.Context(), c.Param("id"), header.Filename,
		header.Header.Get("Content-Type"), header.Size, src)
	if err != nil {
		writeErr(c, err, "Task not found", "Failed to upload file")
		return
	}
	c.JSON(http.StatusCreated, file)
}

func (s *Server) deleteFile(c *gin.Context) {
	if err := s.files.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err, "File not found", "Failed to delete file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
