package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

// Publisher receives the order snapshot once checkout completes.
type Publisher interface {
	OrderPlaced(ctx context.Context, order *domain.OrderRequest) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "order-placed",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) OrderPlaced(ctx context.Context, order *domain.OrderRequest) error {
	payload := map[string]interface{}{
		"order_id":     order.ID,
		"session_id":   order.SessionID,
		"items":        order.Items,
		"coupon_code":  order.CouponCode,
		"total_syp":    order.Summary.TotalSYP,
		"subtotal_syp": order.Summary.SubtotalSYP,
		"captured_at":  order.CapturedAt,
	}
	if order.Table != nil {
		payload["table_number"] = order.Table.Number
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal order payload: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID), // order_id for ordering
		Value: payloadJSON,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_placed")},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) OrderPlaced(_ context.Context, order *domain.OrderRequest) error {
	p.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("session_id", order.SessionID),
		zap.Int64("total_syp", order.Summary.TotalSYP),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
