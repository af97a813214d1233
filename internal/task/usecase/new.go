package usecase

import (
	"context"

	"taskping/internal/task"
	"taskping/internal/task/repository"
	"taskping/pkg/civiltime"
	"taskping/pkg/gcalendar"
	pkgLog "taskping/pkg/log"
	"taskping/pkg/openai"
)

// LLMClient is the draft-extraction boundary.
type LLMClient interface {
	ChatCompletion(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error)
}

// CalendarClient mirrors dated tasks into a calendar. Optional.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        LLMClient
	calendar   CalendarClient
	repo       repository.Repository
	civil      *civiltime.Authority
	calendarID string
}

// New creates a new task UseCase instance. calendar may be nil when
// calendar mirroring is not configured.
func New(
	l pkgLog.Logger,
	llm LLMClient,
	calendar CalendarClient,
	repo repository.Repository,
	civil *civiltime.Authority,
	calendarID string,
) task.UseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		repo:       repo,
		civil:      civil,
		calendarID: calendarID,
	}
}
