package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, manager Manager) *zenrpc.Server {
	rpcService := NewFAQService(manager, logger)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("faq", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "faq", nil))

	return rpcServer
}
