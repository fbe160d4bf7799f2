package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskdeck/internal/config"
	"taskdeck/internal/repository"
	"taskdeck/internal/server"
	"taskdeck/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	fileRepo := repository.NewFileRepository(db)

	statsSvc := service.NewStatsService(statsRepo)
	achievementSvc := service.NewAchievementService(achievementRepo)
	taskSvc := service.NewTaskService(taskRepo, statsSvc, achievementSvc)
	templateSvc := service.NewTemplateService(templateRepo, taskSvc)
	fileSvc := service.NewFileService(fileRepo, taskRepo, cfg.UploadDir, cfg.MaxUploadBytes)
	suggestSvc := service.NewSuggestService(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	reminderSvc := service.NewReminderService(taskRepo)

	if err := fileSvc.EnsureDir(); err != nil {
		log.Fatalf("uploads: %v", err)
	}

	scheduler := service.NewSchedulerService(time.Local)
	sweep := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		summary, err := reminderSvc.DueSummary(jobCtx, time.Now())
		if err != nil {
			log.Printf("reminder sweep: %v", err)
			return
		}
		if summary != "" {
			log.Printf("[info] %s", summary)
		}
	}
	if cfg.ReminderInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReminderInterval, sweep); err != nil {
			log.Fatalf("schedule reminders: %v", err)
		}
	}
	if cfg.SummaryTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, sweep); err != nil {
			log.Fatalf("schedule daily summary: %v", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := server.New(cfg, taskSvc, templateSvc, achievementSvc, statsSvc, fileSvc, suggestSvc)
	httpSrv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Router(),
	}

	go func() {
		log.Printf("[info] server listening on %s", cfg.Addr())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped with error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
