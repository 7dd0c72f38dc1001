package bootstrap

import (
	"notes-data-be/internal/config"
	"notes-data-be/internal/controller"
	"notes-data-be/internal/pkg/logger"
	"notes-data-be/internal/repository/implementation"
	"notes-data-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	NoteController controller.INoteController
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	noteRepository := implementation.NewNoteRepository(db)
	noteService := service.NewNoteService(noteRepository, cfg.App.BaseURL, sysLogger)
	noteController := controller.NewNoteController(noteService)

	return &Container{
		NoteController: noteController,
		Logger:         sysLogger,
	}
}
