package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"taskping/internal/model"
	"taskping/internal/task"
	"taskping/pkg/openai"
)

// extractedTask is the wire shape one draft arrives in from the model.
type extractedTask struct {
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	DueISO                   *string  `json:"due_iso"`
	ReminderLeadMinutes      *int     `json:"reminder_lead_minutes"`
	EarlyReminderLeadMinutes *int     `json:"early_reminder_lead_minutes"`
	Priority                 string   `json:"priority"`
	Tags                     []string `json:"tags"`
}

type extractionResponse struct {
	Tasks []extractedTask `json:"tasks"`
}

// extractDrafts asks the model for task drafts. A transport or API
// failure is returned as an error; a malformed or off-schema reply
// degrades to an empty draft list ("no tasks found"), not a fault.
func (uc *implUseCase) extractDrafts(ctx context.Context, text string) ([]task.Draft, error) {
	resp, err := uc.llm.ChatCompletion(ctx, openai.ChatRequest{
		Temperature:    0,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
		Messages: []openai.ChatMessage{
			{Role: "system", Content: fmt.Sprintf(promptExtractSystem, uc.civil.Now().Format(time.RFC3339))},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: extraction call failed: %w", logPrefixExtract, err)
	}

	raw := stripCodeFence(resp.Text())

	var parsed extractionResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		uc.l.Warnf(ctx, "%s: unparseable extraction payload, treating as no tasks: %v", logPrefixExtract, err)
		return nil, nil
	}

	drafts := make([]task.Draft, 0, len(parsed.Tasks))
	for _, t := range parsed.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			uc.l.Warnf(ctx, "%s: dropping draft with empty title", logPrefixExtract)
			continue
		}

		d := task.Draft{
			Title:                    t.Title,
			Description:              t.Description,
			ReminderLeadMinutes:      t.ReminderLeadMinutes,
			EarlyReminderLeadMinutes: t.EarlyReminderLeadMinutes,
			Priority:                 model.ParsePriority(t.Priority),
			Tags:                     t.Tags,
		}

		if t.DueISO != nil && *t.DueISO != "" {
			dueAt, parseErr := time.Parse(time.RFC3339, *t.DueISO)
			if parseErr != nil {
				uc.l.Warnf(ctx, "%s: bad due_iso %q for %q, keeping task undated: %v",
					logPrefixExtract, *t.DueISO, t.Title, parseErr)
			} else {
				d.DueAt = &dueAt
			}
		}

		drafts = append(drafts, d)
	}

	return drafts, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models insist on.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
