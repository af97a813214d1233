package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskping/internal/model"
	"taskping/internal/task"
	"taskping/internal/task/usecase"
	"taskping/pkg/civiltime"
	"taskping/pkg/openai"
)

func newExtractionServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		userText := req.Messages[len(req.Messages)-1].Content

		if strings.Contains(userText, "error_llm_500") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if strings.Contains(userText, "error_llm_json") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"choices":[{"message":{"content":"not even json"}}]}`))
			return
		}
		if strings.Contains(userText, "nothing_here") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"choices":[{"message":{"content":"{\"tasks\":[]}"}}]}`))
			return
		}

		payload := `{"tasks":[{"title":"Pay rent","due_iso":"2024-05-10T10:00:00+05:30","priority":"high","tags":["Payment"]},{"title":"Call plumber","due_iso":null,"priority":"normal","tags":[]}]}`
		body, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "```json\n" + payload + "\n```"}},
			},
		})
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}))
}

func TestIntake(t *testing.T) {
	ts := newExtractionServer(t)
	defer ts.Close()

	llm := openai.NewClient("test-key")
	llm.SetAPIURL(ts.URL)
	civil := civiltime.New(civiltime.FixedClock{T: time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC)})
	sc := model.Scope{ChatID: 42}

	t.Run("Success Path", func(t *testing.T) {
		repo := &mockRepository{}
		cal := &mockCalendarClient{}
		uc := usecase.New(&mockLogger{}, llm, cal, repo, civil, "primary")

		out, err := uc.Intake(context.Background(), sc, task.IntakeInput{RawText: "pay rent friday, call plumber", SourceMessageID: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(out.Tasks))
		}

		rent := out.Tasks[0]
		if rent.Priority != model.PriorityHigh {
			t.Errorf("priority = %v, want HIGH", rent.Priority)
		}
		if rent.DueAt == nil || rent.RemindAt == nil || rent.EarlyRemindAt == nil {
			t.Fatalf("dated high-priority task missing schedule fields: %+v", rent)
		}
		if got := rent.DueAt.Sub(*rent.EarlyRemindAt); got != 30*time.Minute {
			t.Errorf("early lead = %v, want 30m", got)
		}
		if len(rent.Tags) != 1 || rent.Tags[0] != "payment" {
			t.Errorf("tags = %v, want lower-cased [payment]", rent.Tags)
		}
		if rent.SourceMessageID == nil || *rent.SourceMessageID != 7 {
			t.Errorf("source message ref not carried: %v", rent.SourceMessageID)
		}

		plumber := out.Tasks[1]
		if plumber.DueAt != nil || plumber.RemindAt != nil || plumber.EarlyRemindAt != nil {
			t.Errorf("undated task must have no schedule fields: %+v", plumber)
		}

		// Only the dated task is mirrored to the calendar.
		if cal.created != 1 {
			t.Errorf("calendar events = %d, want 1", cal.created)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, llm, nil, &mockRepository{}, civil, "")
		_, err := uc.Intake(context.Background(), sc, task.IntakeInput{RawText: "   "})
		if err != task.ErrEmptyInput {
			t.Errorf("err = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("LLM Failure Degrades To No Tasks", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, llm, nil, &mockRepository{}, civil, "")
		out, err := uc.Intake(context.Background(), sc, task.IntakeInput{RawText: "error_llm_500"})
		if err != nil {
			t.Fatalf("extraction failure must not be a fault: %v", err)
		}
		if len(out.Tasks) != 0 {
			t.Errorf("expected no tasks, got %d", len(out.Tasks))
		}
	})

	t.Run("Malformed JSON Degrades To No Tasks", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, llm, nil, &mockRepository{}, civil, "")
		out, err := uc.Intake(context.Background(), sc, task.IntakeInput{RawText: "error_llm_json"})
		if err != nil || len(out.Tasks) != 0 {
			t.Errorf("got (%d tasks, %v), want (0, nil)", len(out.Tasks), err)
		}
	})

	t.Run("No Tasks Found", func(t *testing.T) {
		repo := &mockRepository{}
		uc := usecase.New(&mockLogger{}, llm, nil, repo, civil, "")
		out, err := uc.Intake(context.Background(), sc, task.IntakeInput{RawText: "nothing_here just chatting"})
		if err != nil || len(out.Tasks) != 0 {
			t.Errorf("got (%d tasks, %v), want (0, nil)", len(out.Tasks), err)
		}
		if len(repo.tasks) != 0 {
			t.Errorf("nothing should be persisted")
		}
	})

	t.Run("Persistence Failure Is A Fault", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, llm, nil, &mockRepository{failCreate: true}, civil, "")
		_, err := uc.Intake(context.Background(), sc, task.IntakeInput{RawText: "pay rent friday"})
		if err == nil {
			t.Errorf("expected persistence error to propagate")
		}
	})

	t.Run("Calendar Failure Is Non-Fatal", func(t *testing.T) {
		repo := &mockRepository{}
		uc := usecase.New(&mockLogger{}, llm, &mockCalendarClient{fail: true}, repo, civil, "primary")
		out, err := uc.Intake(context.Background(), sc, task.IntakeInput{RawText: "pay rent friday"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 {
			t.Errorf("tasks still saved despite calendar failure, got %d", len(out.Tasks))
		}
	})
}
