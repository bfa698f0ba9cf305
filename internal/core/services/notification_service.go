package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// NotificationService pushes restriction notices to a Slack-compatible
// incoming webhook. Delivery is best-effort: a single POST, non-2xx responses
// are reported as errors for the caller to log, no retry, no dead-letter.
type NotificationService struct {
	webhookURL string
	client     *http.Client
	enabled    bool
}

// NewNotificationService creates a new notification service. An empty
// webhook URL disables delivery.
func NewNotificationService(webhookURL string) *NotificationService {
	return &NotificationService{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		enabled:    webhookURL != "",
	}
}

// IsEnabled checks if notification delivery is configured
func (s *NotificationService) IsEnabled() bool {
	return s.enabled
}

// RestrictionNotice carries everything the message channel needs about a
// submission: associate identity, the restriction text, the recommended
// role, the submitter, and the occupancy numbers for the affected bucket.
type RestrictionNotice struct {
	AssociateName   string
	AssociateLogin  string
	HomePath        string
	Restrictions    string
	RecommendedRole string
	RequestorLogin  string
	Bucket          string
	BucketSeated    int64
	TotalSeated     int64
	AttachmentURL   string
}

// webhookPayload is the outbound JSON body. The preformatted text block is
// what Slack-style webhooks render; the structured fields let other
// receivers format the same information themselves.
type webhookPayload struct {
	Text            string `json:"text"`
	AssociateLogin  string `json:"associate_login"`
	RecommendedRole string `json:"recommended_role"`
	Bucket          string `json:"shift_bucket"`
	BucketSeated    int64  `json:"bucket_seated"`
	TotalSeated     int64  `json:"total_seated"`
}

// SendRestrictionNotice posts the notice to the webhook
func (s *NotificationService) SendRestrictionNotice(ctx context.Context, notice RestrictionNotice) error {
	if !s.enabled {
		log.Println("⚠️ No webhook configured, notification not sent")
		return nil
	}

	payload := webhookPayload{
		Text:            formatNotice(notice),
		AssociateLogin:  notice.AssociateLogin,
		RecommendedRole: notice.RecommendedRole,
		Bucket:          notice.Bucket,
		BucketSeated:    notice.BucketSeated,
		TotalSeated:     notice.TotalSeated,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook responded %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// formatNotice builds the message block posted to the channel
func formatNotice(n RestrictionNotice) string {
	text := fmt.Sprintf(`We have received restrictions for %s (%s)
@channel

Home Path: %s
Restrictions: %s
Recommendation: %s

This is an automated message sent out by: %s

Current seated spots for %s: %d
Total Seated accommodations: %d`,
		n.AssociateName, n.AssociateLogin,
		n.HomePath,
		n.Restrictions,
		n.RecommendedRole,
		n.RequestorLogin,
		n.Bucket, n.BucketSeated,
		n.TotalSeated,
	)
	if n.AttachmentURL != "" {
		text += fmt.Sprintf("\n\nSupporting document: %s", n.AttachmentURL)
	}
	return text
}
