package notify

import (
	"context"
	"encoding/json"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

var ErrAMQP = errs.Class("AMQP")

type Config struct {
	AmqpUrl  string `help:"事件发布的AMQP地址,为空时不发布" default:""`
	Exchange string `help:"事件发布的topic exchange" default:"hangar.events"`
}

// AMQP 以事件类型为routing key发布到topic exchange
type AMQP struct {
	mux      sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
}

func NewAMQP(conf *Config, log *zap.Logger) (*AMQP, error) {
	conn, err := amqp.Dial(conf.AmqpUrl)
	if err != nil {
		return nil, ErrAMQP.Wrap(err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, ErrAMQP.Wrap(err)
	}
	err = ch.ExchangeDeclare(
		conf.Exchange, // name
		"topic",       // kind
		true,          // durable
		false,         // autoDelete
		false,         // internal
		false,         // noWait
		nil,           // args
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, ErrAMQP.Wrap(err)
	}
	return &AMQP{
		conn:     conn,
		ch:       ch,
		exchange: conf.Exchange,
		log:      log,
	}, nil
}

func (a *AMQP) Publish(ctx context.Context, e Event) {
	body, err := json.Marshal(e)
	if err != nil {
		a.log.Error("事件序列化失败", zap.Error(err))
		return
	}
	a.mux.Lock()
	defer a.mux.Unlock()
	err = a.ch.PublishWithContext(ctx, a.exchange, e.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.At,
		Body:         body,
	})
	if err != nil {
		a.log.Error("事件发布失败", zap.Error(err), zap.String("event", e.Type))
	}
}

func (a *AMQP) Close() error {
	a.mux.Lock()
	defer a.mux.Unlock()
	return errs.Combine(a.ch.Close(), a.conn.Close())
}
