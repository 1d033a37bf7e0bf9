package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// Response messages for the webhook endpoint. Senders disable endpoints
// that fail, so the bodies stay stable.
const (
	MsgHealthy   = "GitHub webhook endpoint is up"
	MsgProcessed = "Webhook processed successfully"
)
