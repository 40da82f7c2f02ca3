package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/interview-deck/internal/deck"
)

const Namespace = "deck"

func New(logger *slog.Logger, manager *deck.Manager) *zenrpc.Server {
	rpcService := NewDeckService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(Namespace, rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "interview-deck", nil))

	return rpcServer
}
