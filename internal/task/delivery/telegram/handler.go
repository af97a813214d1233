package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskping/internal/model"
	"taskping/internal/router"
	"taskping/internal/task"
	"taskping/pkg/civiltime"
	pkgLog "taskping/pkg/log"
	pkgResponse "taskping/pkg/response"
	pkgTelegram "taskping/pkg/telegram"
)

type handler struct {
	l           pkgLog.Logger
	uc          task.UseCase
	bot         *pkgTelegram.Bot
	transcriber Transcriber
	router      router.Router
	civil       *civiltime.Authority
	seen        *expirable.LRU[int64, struct{}]
}

// HandleWebhook is the Gin handler for incoming Telegram webhook
// updates. It acknowledges with HTTP 200 immediately and processes the
// message in a background goroutine: Telegram expects a response
// within a few seconds, and the intake pipeline (LLM, optionally
// transcription and calendar) can take longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "task/delivery/telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Telegram redelivers updates after timeouts; an already-seen update
	// id is acknowledged without reprocessing.
	if _, dup := h.seen.Get(update.UpdateID); dup {
		pkgResponse.OK(c, map[string]string{"status": "duplicate"})
		return
	}
	h.seen.Add(update.UpdateID, struct{}{})

	// Snapshot before spawning to avoid racing on the gin context.
	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled right after
		// the 200 goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "task/delivery/telegram.HandleWebhook: background processing failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage resolves one message to an action and replies.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)

	if text == "" && msg.Voice != nil {
		transcribed, err := h.transcribeVoice(ctx, msg.Voice)
		if err != nil {
			h.l.Errorf(ctx, "task/delivery/telegram.processMessage: voice transcription failed: %v", err)
			return h.bot.SendMessage(msg.Chat.ID, msgVoiceFailed)
		}
		text = transcribed
	}

	if text == "" {
		return h.bot.SendMessage(msg.Chat.ID, msgNothingToDo)
	}

	sc := model.Scope{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sc.Username = msg.From.Username
	}

	action := h.router.Resolve(text)
	switch action.Kind {
	case router.ActionAdd:
		return h.handleAdd(ctx, sc, msg, action.Text)
	case router.ActionNext:
		return h.handleNext(ctx, sc, msg.Chat.ID)
	case router.ActionToday:
		return h.handleToday(ctx, sc, msg.Chat.ID)
	case router.ActionDone:
		return h.handleDone(ctx, sc, msg.Chat.ID, action.Ordinal)
	case router.ActionSnooze:
		return h.handleSnooze(ctx, sc, msg.Chat.ID, action)
	case router.ActionUsage:
		return h.bot.SendMessage(msg.Chat.ID, action.Usage)
	default:
		return h.bot.SendMessage(msg.Chat.ID, router.MsgUnknown)
	}
}

func (h *handler) transcribeVoice(ctx context.Context, voice *pkgTelegram.Voice) (string, error) {
	if h.transcriber == nil {
		return "", errors.New("voice input is not configured")
	}

	audio, err := h.bot.DownloadVoice(voice.FileID)
	if err != nil {
		return "", err
	}
	return h.transcriber.Transcribe(ctx, "voice.ogg", audio)
}

func (h *handler) handleAdd(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message, text string) error {
	out, err := h.uc.Intake(ctx, sc, task.IntakeInput{
		RawText:         text,
		SourceMessageID: msg.MessageID,
	})
	if err != nil {
		h.l.Errorf(ctx, "task/delivery/telegram.handleAdd: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, msgSaveFailed)
	}
	if len(out.Tasks) == 0 {
		return h.bot.SendMessage(msg.Chat.ID, msgNoTasksFound)
	}

	// The confirmation quotes the message that produced the tasks.
	return h.bot.SendMessageWithOptions(msg.Chat.ID, h.addedText(out.Tasks), pkgTelegram.SendOptions{
		ReplyToMessageID: msg.MessageID,
	})
}

func (h *handler) handleNext(ctx context.Context, sc model.Scope, chatID int64) error {
	tasks, err := h.uc.Upcoming(ctx, sc)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return h.bot.SendMessage(chatID, msgAllCaughtUp)
	}
	return h.bot.SendMessage(chatID, h.numberedList("Next up:", tasks))
}

func (h *handler) handleToday(ctx context.Context, sc model.Scope, chatID int64) error {
	tasks, err := h.uc.Today(ctx, sc)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return h.bot.SendMessage(chatID, msgNoneDueToday)
	}
	header := fmt.Sprintf("Today's plan (%s):", h.civil.FormatDate(h.civil.Now()))
	return h.bot.SendMessage(chatID, h.numberedList(header, tasks))
}

func (h *handler) handleDone(ctx context.Context, sc model.Scope, chatID int64, ordinal int) error {
	done, err := h.uc.CompleteByOrdinal(ctx, sc, ordinal)
	if errors.Is(err, task.ErrTaskNotFound) {
		return h.bot.SendMessage(chatID, msgTaskNotFound)
	}
	if err != nil {
		return err
	}
	return h.bot.SendMessage(chatID, fmt.Sprintf("Nice! Marked task %d done: %s ✅", ordinal, done.Title))
}

func (h *handler) handleSnooze(ctx context.Context, sc model.Scope, chatID int64, action router.Action) error {
	moved, err := h.uc.SnoozeByOrdinal(ctx, sc, action.Ordinal, action.Duration)
	if errors.Is(err, task.ErrTaskNotFound) {
		return h.bot.SendMessage(chatID, msgSnoozeMissing)
	}
	if err != nil {
		return err
	}
	return h.bot.SendMessage(chatID, fmt.Sprintf("Snoozed task %d to %s", action.Ordinal, model.FormatTaskLine(h.civil, moved)))
}
