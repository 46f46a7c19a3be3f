package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type updateDraftRequest struct {
	Code string `json:"code"`
}

// GetWorkspace returns the full workspace state with the credential
// redacted, plus the busy flag that gates new sends.
func (h *Handler) GetWorkspace(c *gin.Context) {
	workspaceID := c.Param("id")

	state, err := h.workspace.State(c.Request.Context(), workspaceID)
	if err != nil {
		slog.Error("load workspace", "error", err, "workspace", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load workspace"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   state.Messages,
		"draft":      state.Draft,
		"preview":    state.Preview,
		"config":     state.Config.Redacted(),
		"authorized": state.Config.Authorized(),
		"busy":       h.workspace.Busy(workspaceID),
	})
}

// SendMessage runs one conversation turn.
func (h *Handler) SendMessage(c *gin.Context) {
	workspaceID := c.Param("id")

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	result, err := h.workspace.SendPrompt(c.Request.Context(), workspaceID, req.Prompt)
	if err != nil {
		status, message := completionStatus(err)
		slog.Error("turn failed", "error", err, "workspace", workspaceID, "status", status)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":    result.Reply,
		"code":     result.Code,
		"messages": result.Messages,
	})
}

// ClearChat resets the conversation to the system seed.
func (h *Handler) ClearChat(c *gin.Context) {
	workspaceID := c.Param("id")

	messages, err := h.workspace.ClearChat(c.Request.Context(), workspaceID)
	if err != nil {
		slog.Error("clear chat", "error", err, "workspace", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// UpdateDraft persists a live edit of the draft buffer. An empty code field
// is a valid edit.
func (h *Handler) UpdateDraft(c *gin.Context) {
	workspaceID := c.Param("id")

	var req updateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft payload"})
		return
	}

	if err := h.workspace.UpdateDraft(c.Request.Context(), workspaceID, req.Code); err != nil {
		slog.Error("update draft", "error", err, "workspace", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Run commits the draft to the preview buffer.
func (h *Handler) Run(c *gin.Context) {
	workspaceID := c.Param("id")

	result, err := h.workspace.Run(c.Request.Context(), workspaceID)
	if err != nil {
		slog.Error("run code", "error", err, "workspace", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not run code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"preview": result.Preview,
		"title":   result.Title,
		"ranAt":   time.Now(),
	})
}

// Reset restores chat and both code buffers to defaults, keeping the config.
func (h *Handler) Reset(c *gin.Context) {
	workspaceID := c.Param("id")

	if err := h.workspace.Reset(c.Request.Context(), workspaceID); err != nil {
		slog.Error("reset workspace", "error", err, "workspace", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset workspace"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
