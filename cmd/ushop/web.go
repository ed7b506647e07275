package main

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ushop/internal/catalog"
	"ushop/internal/config"
	"ushop/internal/session"
	"ushop/internal/shop"
	"ushop/internal/storage"
)

//go:embed static/shop.css
var shopCSS []byte

func runServer(cfg *config.Config, addr string) error {
	store, err := storage.MakeStore(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("failed to create collection store: %w", err)
	}

	groups, err := catalog.LoadGroups(cfg.Catalog.GroupsPath)
	if err != nil {
		return fmt.Errorf("failed to load category groups: %w", err)
	}

	mux := http.NewServeMux()

	shopServer := shop.NewServer(catalog.NewClient(cfg.Catalog.URL), store, groups, session.Options{
		PageSize:       cfg.Shop.PageSize,
		RecentLimit:    cfg.Shop.RecentLimit,
		SuggestedCount: cfg.Shop.SuggestedCount,
	})
	shopServer.Register(mux)

	cssETag := fmt.Sprintf(`"%x"`, sha256.Sum256(shopCSS))
	mux.HandleFunc("/static/shop.css", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == cssETag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=0, no-cache")
		w.Header().Set("ETag", cssETag)
		if _, err := w.Write(shopCSS); err != nil {
			slog.ErrorContext(r.Context(), "failed to write shop css", "error", err)
		}
	})

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Serving UShop", "address", addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
			return err
		}
		return nil
	}
}
