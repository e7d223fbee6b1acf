package ui

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var content embed.FS

var page = template.Must(template.ParseFS(content, "index.html"))

// Handler serves the browser chat page.
type Handler struct{}

// New 创建页面处理器
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes 注册页面路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, nil); err != nil {
		log.Printf("failed to render chat page: %v", err)
	}
}
