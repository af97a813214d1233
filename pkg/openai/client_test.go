package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskping/pkg/openai"
)

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req openai.ChatRequest
		json.NewDecoder(r.Body).Decode(&req)

		if strings.Contains(req.Messages[len(req.Messages)-1].Content, "cause_500") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"tasks\":[]}"}}]}`))
	}))
	defer ts.Close()

	client := openai.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success", func(t *testing.T) {
		resp, err := client.ChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.ChatMessage{{Role: "user", Content: "hello"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != `{"tasks":[]}` {
			t.Errorf("unexpected content: %q", resp.Text())
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		_, err := client.ChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.ChatMessage{{Role: "user", Content: "cause_500"}},
		})
		if err == nil {
			t.Fatalf("expected API error")
		}
	})
}

func TestTranscribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("response_format") != "text" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pay rent tomorrow at 10am \n"))
	}))
	defer ts.Close()

	client := openai.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	text, err := client.Transcribe(context.Background(), "voice.ogg", []byte("OGGDATA"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "pay rent tomorrow at 10am" {
		t.Errorf("transcript = %q", text)
	}
}
