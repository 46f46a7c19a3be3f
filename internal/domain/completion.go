package domain

// CompletionConfig identifies the model deployment a workspace talks to.
// A request may only proceed when all four fields are set.
type CompletionConfig struct {
	Endpoint   string `json:"endpoint"`
	Deployment string `json:"deployment"`
	APIVersion string `json:"apiVersion"`
	APIKey     string `json:"apiKey"`
}

func (c CompletionConfig) Complete() bool {
	return c.Endpoint != "" && c.Deployment != "" && c.APIVersion != "" && c.APIKey != ""
}

// Redacted returns a copy safe to hand to the browser.
func (c CompletionConfig) Redacted() CompletionConfig {
	c.APIKey = ""
	return c
}

// Authorized reports whether a credential has been set by a login.
func (c CompletionConfig) Authorized() bool {
	return c.APIKey != ""
}
