package config

import "time"

const (
	// AI request timeout
	RequestTimeout = 90 * time.Second

	// Output budget for generated documents. Generous on purpose: the model
	// returns a whole HTML file per turn.
	MaxCompletionTokens = 16000

	// HTTP server timeouts. The write timeout must outlast RequestTimeout
	// because a turn holds the connection for the whole model call.
	ReadTimeout     = 15 * time.Second
	WriteTimeout    = 120 * time.Second
	IdleTimeout     = 60 * time.Second
	ShutdownTimeout = 5 * time.Second

	// Fallback workspace for clients that do not mint their own ID.
	DefaultWorkspaceID = "default"
)
