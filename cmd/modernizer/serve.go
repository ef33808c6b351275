package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/vkbaba/code-modernizer/internal/mcptools"
)

func runServeMCP(addr string) error {
	store, err := newServerStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := mcptools.NewGraphService(store)
	log.Printf("MCP server listening on %s", addr)
	return mcptools.RunMCPServer(ctx, svc, addr)
}
