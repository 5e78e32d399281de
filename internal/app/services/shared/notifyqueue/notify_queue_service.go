package notifyqueue

import (
	"context"
	"fmt"
	"hra-service/internal/app/contracts"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	// CompletionQueueName feeds downstream consumers (report pre-warmers,
	// wellness dashboards) one message per finished assessment.
	CompletionQueueName = "hra_assessment_completed_queue"
)

// CompletionMessage is the payload published on assessment completion.
type CompletionMessage struct {
	AssessmentID string `json:"assessment_id"`
	EmployeeID   string `json:"employee_id"`
	CompletedAt  string `json:"completed_at"`
}

// Service publishes completion events to a durable RabbitMQ queue with
// publisher confirms.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger) (contracts.CompletionPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		CompletionQueueName, // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// PublishCompletion publishes a persistent message and waits for the broker
// confirm.
func (s *Service) PublishCompletion(ctx context.Context, assessmentID, employeeID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("NotifyQueue.PublishCompletion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingQueueKey, CompletionQueueName),
	)

	body, err := json.Marshal(CompletionMessage{
		AssessmentID: assessmentID,
		EmployeeID:   employeeID,
		CompletedAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", CompletionQueueName, false, false, msg); err != nil {
		return exceptions.ErrPublishMessage(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrPublishMessage(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrPublishMessage(ctx.Err())
	}

	s.log.Info("NotifyQueue.PublishCompletion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return nil
}
