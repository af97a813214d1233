package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskping/internal/router"
	"taskping/internal/task"
	"taskping/pkg/civiltime"
	pkgLog "taskping/pkg/log"
	pkgTelegram "taskping/pkg/telegram"
)

// Telegram redelivers updates it thinks were not acknowledged; seen
// update ids are remembered for this long.
const (
	dedupeSize = 2048
	dedupeTTL  = 10 * time.Minute
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Transcriber turns a voice note into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

// New creates a new Telegram delivery handler. transcriber may be nil
// when voice input is not configured.
func New(
	l pkgLog.Logger,
	uc task.UseCase,
	bot *pkgTelegram.Bot,
	transcriber Transcriber,
	rt router.Router,
	civil *civiltime.Authority,
) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		transcriber: transcriber,
		router:      rt,
		civil:       civil,
		seen:        expirable.NewLRU[int64, struct{}](dedupeSize, nil, dedupeTTL),
	}
}
