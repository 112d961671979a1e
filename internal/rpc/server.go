package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/settings"
)

func New(logger *slog.Logger, engine *content.Engine, sessions *content.Sessions, coord *content.Coordinator, settingsSvc *settings.Service) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("content", NewContentService(engine, sessions, coord))
	rpcServer.Register("settings", NewSettingsService(settingsSvc))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "content-admin", nil))

	return rpcServer
}
