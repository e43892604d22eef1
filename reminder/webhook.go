package reminder

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// WebhookAlerter forwards fired alerts to an external notification hook as
// JSON. Delivery is fire-and-forget: failures are logged and dropped, and a
// posted alert cannot be recalled.
type WebhookAlerter struct {
	url        string
	httpClient *http.Client
}

// NewWebhookAlerter creates an alerter posting to url.
func NewWebhookAlerter(url string) *WebhookAlerter {
	return &WebhookAlerter{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Sound  string `json:"sound"`
	Notify bool   `json:"notify"`
	Alert  Alert  `json:"alert"`
}

// Alert posts the alert asynchronously so the engine tick never blocks on
// the hook endpoint.
func (w *WebhookAlerter) Alert(a Alert) {
	go func() {
		payload := webhookPayload{
			Title:  a.Title(),
			Body:   a.Body(),
			Sound:  a.Sound.URL,
			Notify: a.NotifyEnabled,
			Alert:  a,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("webhook alert marshal failed: %v", err)
			return
		}
		resp, err := w.httpClient.Post(w.url, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("webhook alert delivery failed: %v", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			log.Printf("webhook alert rejected with status %d", resp.StatusCode)
		}
	}()
}
