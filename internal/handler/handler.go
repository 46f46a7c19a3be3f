package handler

import (
	"io/fs"

	"github.com/futureday25/viberlab/internal/config"
	"github.com/futureday25/viberlab/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler holds all dependencies needed by the HTTP endpoints.
type Handler struct {
	cfg         *config.Config
	workspace   *service.WorkspaceService
	completions *service.CompletionService
	web         fs.FS
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg         *config.Config
	Workspace   *service.WorkspaceService
	Completions *service.CompletionService
	Web         fs.FS
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:         deps.Cfg,
		workspace:   deps.Workspace,
		completions: deps.Completions,
		web:         deps.Web,
	}
}

// Register wires all routes onto the engine.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.POST("/generate", h.Generate)

	ws := api.Group("/workspaces/:id")
	ws.GET("", h.GetWorkspace)
	ws.POST("/messages", h.SendMessage)
	ws.DELETE("/messages", h.ClearChat)
	ws.PUT("/draft", h.UpdateDraft)
	ws.POST("/run", h.Run)
	ws.POST("/reset", h.Reset)

	h.registerStatic(r)
}
