package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/vilohq/vilo-api/internal/config"
	"github.com/vilohq/vilo-api/internal/domain"
)

type EventType string

const (
	EventBookingCreated EventType = "BOOKING_CREATED"
	EventBookingChanged EventType = "BOOKING_CHANGED"
)

// BookingEvent is published after the primary booking write commits. The
// event worker consumes it and runs the best-effort secondary effects
// (invoice, notifications, activity log) off the request path.
type BookingEvent struct {
	Type      EventType            `json:"type"`
	TenantID  string               `json:"tenant_id"`
	Booking   domain.Booking       `json:"booking"`
	Change    domain.BookingChange `json:"change"`
	Timestamp time.Time            `json:"timestamp"`
}

type ReceivedEvent struct {
	Event         BookingEvent
	ReceiptHandle *string
}

type SQSService struct {
	client        *sqs.Client
	eventQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:        client,
		eventQueueURL: config.EventQueueURL,
	}
}

func (s *SQSService) EventQueueURL() string {
	return s.eventQueueURL
}

func (s *SQSService) SendBookingCreated(ctx context.Context, booking *domain.Booking) error {
	event := BookingEvent{
		Type:      EventBookingCreated,
		TenantID:  booking.TenantID,
		Booking:   *booking,
		Timestamp: time.Now(),
	}
	return s.sendEvent(ctx, event)
}

func (s *SQSService) SendBookingChanged(ctx context.Context, booking *domain.Booking, change domain.BookingChange) error {
	event := BookingEvent{
		Type:      EventBookingChanged,
		TenantID:  booking.TenantID,
		Booking:   *booking,
		Change:    change,
		Timestamp: time.Now(),
	}
	return s.sendEvent(ctx, event)
}

func (s *SQSService) sendEvent(ctx context.Context, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(body)),
		QueueUrl:    aws.String(s.eventQueueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveEvents(ctx context.Context, maxMessages int32, waitTimeSeconds int32) ([]ReceivedEvent, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.eventQueueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive events: %w", err)
	}

	var events []ReceivedEvent
	for _, msg := range output.Messages {
		var event BookingEvent
		if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, ReceivedEvent{
			Event:         event,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return events, nil
}

func (s *SQSService) DeleteEvent(ctx context.Context, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.eventQueueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
