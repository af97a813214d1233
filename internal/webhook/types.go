package webhook

// SecurityConfig controls inbound request validation.
type SecurityConfig struct {
	// TelegramSecret is the secret token registered with setWebhook.
	// Telegram echoes it back on every update.
	TelegramSecret string

	// TriggerSecret authorizes the cron trigger endpoints.
	TriggerSecret string

	// AllowedIPs restricts sources to the listed IPs or CIDR ranges.
	// Empty means no restriction.
	AllowedIPs []string

	// RateLimitPerMin caps requests per source per minute.
	RateLimitPerMin int
}
