package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ottoman-ai/chef-chat/internal/config"
	"github.com/ottoman-ai/chef-chat/internal/handler"
	"github.com/ottoman-ai/chef-chat/internal/service/ai"
	"github.com/ottoman-ai/chef-chat/internal/service/relay"
	"github.com/ottoman-ai/chef-chat/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := newStore(cfg.Session)
	if err != nil {
		log.Fatalf("failed to initialize session store: %v", err)
	}
	log.Printf("session store initialized (backend=%s)", cfg.Session.Backend)

	codec := session.NewCodec(secretKey(cfg.Session))

	// Initialize completion client
	var completer ai.Completer
	if cfg.AI.Enabled() {
		client, err := ai.NewClient(cfg.AI)
		if err != nil {
			log.Fatalf("failed to initialize completion client: %v", err)
		}
		completer = client
		log.Println("completion client initialized successfully")
	} else {
		log.Println("warning: Azure OpenAI credentials not configured, /chat will report relay errors")
	}

	relaySvc := relay.NewService(store, completer)
	router := handler.NewRouter(relaySvc, codec)

	startServer(ctx, cfg.Server, router)
}

func newStore(cfg config.SessionConfig) (session.Store, error) {
	if cfg.Backend == "memory" {
		return session.NewMemoryStore(), nil
	}
	return session.NewFileStore(cfg.Dir)
}

func secretKey(cfg config.SessionConfig) []byte {
	if cfg.SecretKey != "" {
		return []byte(cfg.SecretKey)
	}

	log.Println("warning: SESSION_SECRET_KEY not set, using a random key; session cookies will not survive restarts")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate session key: %v", err)
	}
	return key
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Chef Chat backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
