package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/ottoman-ai/chef-chat/internal/handler/chat"
	uiHandler "github.com/ottoman-ai/chef-chat/internal/handler/ui"
	"github.com/ottoman-ai/chef-chat/internal/middleware"
	"github.com/ottoman-ai/chef-chat/internal/service/relay"
	"github.com/ottoman-ai/chef-chat/internal/session"
)

// NewRouter wires HTTP routes to the relay service.
func NewRouter(relaySvc *relay.Service, codec *session.Codec) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Sessions(codec))

	uiHandler.New().RegisterRoutes(r)
	chatHandler.New(relaySvc).RegisterRoutes(r)

	return r
}
