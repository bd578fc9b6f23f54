package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/constant"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrQueue = "rabbitmq.queue"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToPublishing() (amqp.Publishing, error) {
	body, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return amqp.Publishing{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    m.Key,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}

type Client interface {
	Publish(ctx context.Context, queue string, messages ...Message) (err error)
	Close() error
}

type rabbitClientImpl struct {
	config *config.Config
	otel   otel.Otel

	mu   sync.Mutex
	conn *amqp.Connection
}

func New(config *config.Config, otel otel.Otel) Client {
	log.Info().Bool("enabled", config.External.RabbitMQ.Enable).Msg("RabbitMQ client initialized")

	return &rabbitClientImpl{
		config: config,
		otel:   otel,
	}
}

// connection returns the shared connection, dialing again when the previous one was closed.
func (r *rabbitClientImpl) connection() (*amqp.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn, nil
	}

	conn, err := amqp.Dial(r.config.External.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	r.conn = conn

	return conn, nil
}

func (r *rabbitClientImpl) Publish(ctx context.Context, queue string, messages ...Message) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".rabbitmq.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrQueue, queue)

	if !r.config.External.RabbitMQ.Enable {
		log.Debug().Str("queue", queue).Int("messages", len(messages)).Msg("RabbitMQ disabled, skipping publish")

		return nil
	}

	conn, err := r.connection()
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to connect to RabbitMQ.")

		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to open RabbitMQ channel.")

		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	defer channel.Close()

	if _, err = channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to declare RabbitMQ queue.")

		return fmt.Errorf("failed to declare rabbitmq queue: %w", err)
	}

	for _, message := range messages {
		publishing, err := message.ToPublishing()
		if err != nil {
			return err
		}

		if err = channel.PublishWithContext(ctx, "", queue, false, false, publishing); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("Failed to publish message to RabbitMQ.")

			return fmt.Errorf("failed to publish message to rabbitmq: %w", err)
		}
	}

	log.Info().Str("queue", queue).Int("messages", len(messages)).Msg("Published messages successfully.")

	return nil
}

func (r *rabbitClientImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return nil
	}

	if err := r.conn.Close(); err != nil {
		return fmt.Errorf("failed to close rabbitmq connection: %w", err)
	}

	return nil
}
