package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"bookline-admin/res/model"
	"bookline-admin/res/notification"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	webhookURL string
	httpClient *http.Client
	logger     *log.Logger
}

// slackMessage represents the structure of a Slack message
type slackMessage struct {
	Text string `json:"text"`
}

// New creates a new NotificationService instance
func New(webhookURL string, timeout time.Duration, logger *log.Logger) notification.NotificationService {
	return &notificationService{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// NotifyReservationChanged sends a notification to Slack when a reservation changes
func (s *notificationService) NotifyReservationChanged(ctx context.Context, reservation model.Reservation) error {
	// If webhook URL is not configured, skip notification silently
	if s.webhookURL == "" {
		s.logger.Printf("Slack webhook URL not configured, skipping notification")
		return nil
	}

	message := slackMessage{
		Text: fmt.Sprintf(":bell: Reservation %s is now *%s* (%s → %s, party of %d)",
			reservation.ID, reservation.Status, reservation.CheckIn, reservation.CheckOut, reservation.PartySize),
	}

	return s.sendToSlack(ctx, message)
}

// NotifyScheduleChanged sends a notification to Slack when opening periods are replaced
func (s *notificationService) NotifyScheduleChanged(ctx context.Context, businessID string, periods []model.OpeningPeriod) error {
	// If webhook URL is not configured, skip notification silently
	if s.webhookURL == "" {
		s.logger.Printf("Slack webhook URL not configured, skipping notification")
		return nil
	}

	ranges := make([]string, len(periods))
	for i, p := range periods {
		ranges[i] = fmt.Sprintf("%s → %s", p.Start, p.End)
	}
	if len(ranges) == 0 {
		ranges = []string{"(none)"}
	}

	message := slackMessage{
		Text: fmt.Sprintf(":calendar: Opening periods for %s replaced:\n%s", businessID, strings.Join(ranges, "\n")),
	}

	return s.sendToSlack(ctx, message)
}

// sendToSlack is a helper method to send messages to Slack
func (s *notificationService) sendToSlack(ctx context.Context, message slackMessage) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create slack request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack API returned non-OK status %d: %s", resp.StatusCode, string(body))
	}

	s.logger.Printf("Successfully sent Slack message")
	return nil
}
