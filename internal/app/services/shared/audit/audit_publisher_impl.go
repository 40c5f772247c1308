package audit

import (
	"context"
	"sync"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const AuditEventQueueName = "audit_events"

type auditPublisher struct {
	Channel *amqp091.Channel
	Log     *zap.Logger
}

var (
	auditPublisherInstance contracts.AuditPublisher
	onceAuditPublisher     sync.Once
	auditPublisherError    error
)

// NewAuditPublisher declares the durable audit event queue and returns a
// publisher mirroring every audit record onto it for downstream consumers.
func NewAuditPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger) (contracts.AuditPublisher, error) {
	onceAuditPublisher.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			auditPublisherError = err
			return
		}
		_, err = channel.QueueDeclare(
			AuditEventQueueName, // name
			true,                // durable
			false,               // autoDelete
			false,               // exclusive
			false,               // noWait
			nil,                 // args
		)
		if err != nil {
			auditPublisherError = err
			return
		}
		auditPublisherInstance = &auditPublisher{
			Channel: channel,
			Log:     logger,
		}
	})
	return auditPublisherInstance, auditPublisherError
}

func (p *auditPublisher) PublishAuditEvent(ctx context.Context, entry *models.AuditLog) error {
	body, err := json.Marshal(entry)
	if err != nil {
		p.Log.Error("auditPublisher.PublishAuditEvent error marshaling JSON",
			zap.Error(err),
		)
		return err
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	return p.Channel.PublishWithContext(ctx, "", AuditEventQueueName, false, false, message)
}
