package rpc

import (
	"log/slog"
	"time"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

const NSBlog = "blog"

func New(logger *slog.Logger, manager *blog.Manager, now func() time.Time) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NSBlog, NewBlogService(manager, now))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blogicum", nil))

	return rpcServer
}
