package httpserver

import (
	"github.com/gin-gonic/gin"

	"taskping/pkg/response"
)

// triggerReminders runs one due-reminder pass
// @Summary Run Due Reminders
// @Description Scan open tasks and send every elapsed reminder
// @Tags Cron
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "Pass completed"
// @Router /cron/reminders [post]
func (srv *HTTPServer) triggerReminders(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.scheduler.RunDueReminders(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.triggerReminders: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}

// triggerDaily runs one daily-digest pass
// @Summary Run Daily Digest
// @Description Send every chat with open tasks its morning digest
// @Tags Cron
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "Pass completed"
// @Router /cron/daily [post]
func (srv *HTTPServer) triggerDaily(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.scheduler.RunDailyDigest(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.triggerDaily: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}
