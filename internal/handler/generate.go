package handler

import (
	"net/http"

	"github.com/futureday25/viberlab/internal/domain"
	"github.com/gin-gonic/gin"
)

type generateRequest struct {
	Messages []domain.LlmMessage `json:"messages" binding:"required,min=1"`
	Config   struct {
		Endpoint   string `json:"endpoint"`
		Deployment string `json:"deployment"`
		APIVersion string `json:"apiVersion"`
	} `json:"config"`
}

// Generate is the stateless completion proxy: it forwards the given message
// sequence upstream with the server-held credential and returns the
// normalized content. Deployment fields may be overridden per request.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	cfg := h.cfg.DefaultCompletionConfig()
	cfg.APIKey = h.cfg.AzureAPIKey
	if req.Config.Endpoint != "" {
		cfg.Endpoint = req.Config.Endpoint
	}
	if req.Config.Deployment != "" {
		cfg.Deployment = req.Config.Deployment
	}
	if req.Config.APIVersion != "" {
		cfg.APIVersion = req.Config.APIVersion
	}

	content, err := h.completions.RequestCompletion(c.Request.Context(), cfg, req.Messages)
	if err != nil {
		status, message := completionStatus(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}
