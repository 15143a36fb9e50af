package service

import (
	"github.com/avelasco/noteboard/internal/config"
	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/store"
)

type Services struct {
	AuthService  AuthService
	BoardService BoardService
	NoteService  NoteService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.Auth, logger),
		BoardService: NewBoardService(storages.BoardRepository, storages.NoteRepository, logger),
		NoteService:  NewNoteService(storages.NoteRepository, storages.BoardRepository, storages.UserRepository, logger),
	}
}
