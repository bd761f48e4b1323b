package cards

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/glkeru/loyalty/cards/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrConsumerClosed = errors.New("rabbitmq: delivery channel closed")

type RabbitConsumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	msg      <-chan amqp.Delivery
	chout    *amqp.Channel
	queueout string
}

func NewRabbitConsumer(cfg config.Rabbit) (rabbit *RabbitConsumer, err error) {
	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		return nil, err
	}
	// канал для входящих
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		conn.Close()
		return nil, err
	}

	// канал для исходящих
	chout, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = chout.QueueDeclare(
		cfg.ConfirmQueue, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		conn.Close()
		return nil, err
	}

	msg, err := ch.Consume(
		cfg.Queue, // queue
		"",        // consumer
		true,      // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &RabbitConsumer{conn, ch, msg, chout, cfg.ConfirmQueue}, nil
}

func (r *RabbitConsumer) GetNewMessage(ctx context.Context) (string, error) {
	select {
	case d, ok := <-r.msg:
		if !ok {
			return "", ErrConsumerClosed
		}
		return string(d.Body), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *RabbitConsumer) Close() error {
	r.chout.Close()
	r.ch.Close()
	return r.conn.Close()
}

type RedemptionConfirm struct {
	RequestID string `json:"requestId"`
	Success   bool   `json:"success"`
}

// подтверждение списания
func (r *RabbitConsumer) Processed(ctx context.Context, requestID string, success bool) error {
	msg, err := json.Marshal(RedemptionConfirm{requestID, success})
	if err != nil {
		return err
	}
	return r.chout.PublishWithContext(ctx,
		"",         // exchange
		r.queueout, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         msg,
		})
}
