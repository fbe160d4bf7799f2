package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// FileService stores task attachments on disk and tracks them as rows.
// The size ceiling is enforced before any byte reaches storage.
type FileService struct {
	fileRepo *repository.FileRepository
	taskRepo *repository.TaskRepository
	dir      string
	maxBytes int64
}

func NewFileService(fileRepo *repository.FileRepository, taskRepo *repository.TaskRepository, dir string, maxBytes int64) *FileService {
	return &FileService{fileRepo: fileRepo, taskRepo: taskRepo, dir: dir, maxBytes: maxBytes}
}

// EnsureDir creates the uploads directory if absent. Called once at startup.
func (s *FileService) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir %q: %w", s.dir, err)
	}
	return nil
}

func (s *FileService) List(ctx context.Context, taskID string) ([]model.File, error) {
	return s.fileRepo.ListByTask(ctx, taskID)
}

// Save writes the upload under a timestamp-prefixed name and inserts the row
// after the bytes are safely on disk. Oversized uploads are rejected before
// anything is written; an undeclared overrun detected mid-copy removes the
// partial file.
func (s *FileService) Save(ctx context.Context, taskID, filename, mimetype string, size int64, r io.Reader) (*model.File, error) {
	if size > s.maxBytes {
		return nil, validationf("file exceeds the %d MiB upload limit", s.maxBytes>>20)
	}
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, err
	}

	now := time.Now()
	stored := fmt.Sprintf("%d-%s", now.UnixMilli(), filepath.Base(filename))
	path := filepath.Join(s.dir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(r, s.maxBytes+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(path)
		return nil, validationf("file exceeds the %d MiB upload limit", s.maxBytes>>20)
	}

	file := &model.File{
		ID:         fmt.Sprintf("%d", now.UnixMilli()),
		TaskID:     taskID,
		Filename:   filename,
		Filepath:   stored,
		Size:       written,
		Mimetype:   mimetype,
		UploadedAt: now.UTC(),
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return file, nil
}

// Delete removes the row only. Stored bytes stay on disk; reclaiming them is
// out of scope for the row-level cascade.
func (s *FileService) Delete(ctx context.Context, id string) error {
	return s.fileRepo.Delete(ctx, id)
}
