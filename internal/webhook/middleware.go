package webhook

import (
	"github.com/gin-gonic/gin"

	pkgLog "taskping/pkg/log"
	pkgResponse "taskping/pkg/response"
)

const (
	// HeaderTelegramSecret is set by Telegram on every webhook update.
	HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

	// HeaderTriggerSecret authorizes the cron trigger endpoints. Cron
	// services that cannot set headers may pass ?secret= instead.
	HeaderTriggerSecret = "X-Trigger-Secret"
	querySecretParam    = "secret"
)

// TelegramAuth gates the Telegram webhook route: source IP check, rate
// limit, then the echoed secret token.
func TelegramAuth(l pkgLog.Logger, v *SecurityValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := v.ValidateIPAddress(c.Request); err != nil {
			l.Warnf(ctx, "webhook.TelegramAuth: %v", err)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}
		if err := v.CheckRateLimit(extractIP(c.Request)); err != nil {
			l.Warnf(ctx, "webhook.TelegramAuth: %v", err)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		if err := v.ValidateTelegramToken(c.GetHeader(HeaderTelegramSecret)); err != nil {
			l.Warnf(ctx, "webhook.TelegramAuth: %v", err)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// TriggerAuth gates the cron trigger routes with the shared secret.
func TriggerAuth(l pkgLog.Logger, v *SecurityValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := v.CheckRateLimit(extractIP(c.Request)); err != nil {
			l.Warnf(ctx, "webhook.TriggerAuth: %v", err)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}

		secret := c.GetHeader(HeaderTriggerSecret)
		if secret == "" {
			secret = c.Query(querySecretParam)
		}
		if err := v.ValidateTriggerSecret(secret); err != nil {
			l.Warnf(ctx, "webhook.TriggerAuth: %v", err)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
