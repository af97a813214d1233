package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskping/internal/webhook"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram",
			webhook.TelegramAuth(srv.l, srv.security),
			srv.telegramHandler.HandleWebhook,
		)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.scheduler != nil {
		// GET is for cron services that can only fire plain requests.
		trigger := webhook.TriggerAuth(srv.l, srv.security)
		srv.gin.POST("/cron/reminders", trigger, srv.triggerReminders)
		srv.gin.GET("/cron/reminders", trigger, srv.triggerReminders)
		srv.gin.POST("/cron/daily", trigger, srv.triggerDaily)
		srv.gin.GET("/cron/daily", trigger, srv.triggerDaily)
		srv.l.Infof(ctx, "Cron trigger routes registered at /cron/reminders and /cron/daily")
	} else {
		srv.l.Infof(ctx, "Scheduler not configured, skipping cron trigger routes")
	}
}
