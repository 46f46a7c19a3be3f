package handler

import (
	"log/slog"
	"net/http"

	"github.com/futureday25/viberlab/internal/config"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Workspace string `json:"workspace"`
}

type logoutRequest struct {
	Workspace string `json:"workspace"`
}

// Login checks the gate credentials and, on success, hands out the upstream
// API key and authorizes the caller's workspace for completions.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	if req.Username != h.cfg.LoginUser || req.Password != h.cfg.LoginPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if h.cfg.AzureAPIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server has no API key configured"})
		return
	}

	workspaceID := req.Workspace
	if workspaceID == "" {
		workspaceID = config.DefaultWorkspaceID
	}
	if err := h.workspace.Authorize(c.Request.Context(), workspaceID, h.cfg.AzureAPIKey); err != nil {
		slog.Error("authorize workspace", "error", err, "workspace", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"apiKey": h.cfg.AzureAPIKey})
}

// Logout drops the workspace's credential. Chat and code buffers stay.
func (h *Handler) Logout(c *gin.Context) {
	var req logoutRequest
	_ = c.ShouldBindJSON(&req)

	workspaceID := req.Workspace
	if workspaceID == "" {
		workspaceID = config.DefaultWorkspaceID
	}
	if err := h.workspace.Deauthorize(c.Request.Context(), workspaceID); err != nil {
		slog.Error("deauthorize workspace", "error", err, "workspace", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
