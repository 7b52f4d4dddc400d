package service

import (
	"github.com/mjardin/docshare/internal/config"
	"github.com/mjardin/docshare/internal/crypto"
	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/internal/mailer"
	"github.com/mjardin/docshare/internal/store"
	"github.com/mjardin/docshare/internal/validators"
)

type Services struct {
	AuthService AuthService
	FileService FileService
}

func NewServices(storages store.Storages, linkCodec crypto.LinkCodec, m mailer.Mailer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, m, cfg.App, logger),
		FileService: NewFileService(storages.FileRepository, storages.BlobStorage, linkCodec, validators.NewUploadValidator(), cfg.App.LinkTTL, logger),
	}
}
