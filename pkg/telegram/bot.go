package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	fileURL    string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		fileURL:    fmt.Sprintf("https://api.telegram.org/file/bot%s", token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URLs for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
	b.fileURL = url + "/file"
}

// SetWebhook registers the webhook URL with Telegram. When secretToken is
// non-empty, Telegram echoes it back on every update in the
// X-Telegram-Bot-Api-Secret-Token header.
func (b *Bot) SetWebhook(webhookURL, secretToken string) error {
	url := fmt.Sprintf("%s/setWebhook", b.apiURL)
	payload := map[string]string{"url": webhookURL}
	if secretToken != "" {
		payload["secret_token"] = secretToken
	}

	body, _ := json.Marshal(payload)
	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithOptions(chatID, text, SendOptions{})
}

// SendMessageWithOptions sends a message with optional parse mode and
// reply-to reference.
func (b *Bot) SendMessageWithOptions(chatID int64, text string, opts SendOptions) error {
	url := fmt.Sprintf("%s/sendMessage", b.apiURL)
	payload := SendMessageRequest{
		ChatID:           chatID,
		Text:             text,
		ParseMode:        opts.ParseMode,
		ReplyToMessageID: opts.ReplyToMessageID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}

// DownloadVoice fetches the raw bytes of a voice note by its file ID.
func (b *Bot) DownloadVoice(fileID string) ([]byte, error) {
	url := fmt.Sprintf("%s/getFile", b.apiURL)
	body, _ := json.Marshal(map[string]string{"file_id": fileID})

	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to call getFile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("telegram getFile API error %d: %s", resp.StatusCode, string(raw))
	}

	var fileResp getFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&fileResp); err != nil {
		return nil, fmt.Errorf("failed to decode getFile response: %w", err)
	}
	if !fileResp.OK || fileResp.Result == nil || fileResp.Result.FilePath == "" {
		return nil, fmt.Errorf("telegram did not return a file_path")
	}

	fileResp2, err := b.httpClient.Get(fmt.Sprintf("%s/%s", b.fileURL, fileResp.Result.FilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to download voice file: %w", err)
	}
	defer fileResp2.Body.Close()

	if fileResp2.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(fileResp2.Body)
		return nil, fmt.Errorf("voice file download error %d: %s", fileResp2.StatusCode, string(raw))
	}

	return io.ReadAll(fileResp2.Body)
}
