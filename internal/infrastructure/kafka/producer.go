package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/scroller-tech/go-backend/internal/cfg"
	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// interactionMessageModel — wire-формат события взаимодействия в топике аналитики.
type interactionMessageModel struct {
	UserID    string  `json:"user_id"`
	Action    string  `json:"action"`
	Asin      string  `json:"asin"`
	TimeSpent float64 `json:"time_spent,omitempty"`
	Timestamp string  `json:"timestamp"`
}

// Producer публикует события взаимодействий пользователей в Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishInteraction отправляет событие в топик.
// Ключ сообщения — идентификатор пользователя: события одного пользователя
// попадают в одну партицию и сохраняют порядок.
func (p *Producer) PublishInteraction(ctx context.Context, msg *usecase.InteractionMessage) error {
	value, err := json.Marshal(interactionMessageModel{
		UserID:    msg.UserID,
		Action:    msg.Action,
		Asin:      msg.Asin,
		TimeSpent: msg.TimeSpent,
		Timestamp: msg.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.UserID),
		Value: value,
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Close останавливает продьюсер, дописывая накопленный батч.
func (p *Producer) Close() error {
	return p.writer.Close()
}
