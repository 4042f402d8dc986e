package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
)

// VoucherUserMessage é o evento publicado a cada cliente cadastrado.
// A senha do voucher nunca vai na mensagem.
type VoucherUserMessage struct {
	Action        string    `json:"action"` // "create"
	VoucherUserID uint      `json:"voucher_user_id"`
	VoucherID     string    `json:"voucher_id"`
	RegisteredBy  uint      `json:"registered_by"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// NewVoucherCreatedMessage monta o evento a partir do registro salvo
func NewVoucherCreatedMessage(v *domain.VoucherUser) VoucherUserMessage {
	return VoucherUserMessage{
		Action:        "create",
		VoucherUserID: v.ID,
		VoucherID:     v.VoucherID,
		RegisteredBy:  v.RegisteredBy,
		RegisteredAt:  v.RegisteredAt,
	}
}

// Publisher envia eventos de clientes para outros serviços
type Publisher interface {
	PublishVoucherCreated(ctx context.Context, v *domain.VoucherUser) error
	Close() error
}

// RabbitMQPublisher publica na fila durável de vouchers
type RabbitMQPublisher struct {
	mu         sync.Mutex // amqp.Channel não é seguro para uso concorrente
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher conecta, abre o canal e declara a fila
func NewRabbitMQPublisher(rabbitURL, queueName string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if queueName == "" {
		queueName = "voucher_users_queue"
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	log.Info().Str("queue", queueName).Msg("RabbitMQ publisher ready")

	return &RabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// PublishVoucherCreated publica o evento de criação como mensagem persistente
func (p *RabbitMQPublisher) PublishVoucherCreated(ctx context.Context, v *domain.VoucherUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(NewVoucherCreatedMessage(v))
	if err != nil {
		return fmt.Errorf("marshal voucher event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.Publish(
		"",          // exchange padrão
		p.queueName, // routing key = nome da fila
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Close fecha canal e conexão
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.connection.Close()
		return fmt.Errorf("close channel: %w", err)
	}
	return p.connection.Close()
}

// NoopPublisher é usado quando RABBITMQ_URL não está configurada
type NoopPublisher struct{}

func (NoopPublisher) PublishVoucherCreated(context.Context, *domain.VoucherUser) error { return nil }

func (NoopPublisher) Close() error { return nil }
