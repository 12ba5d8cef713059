package listener

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/samaansync/inventory-service/internal/transaction"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
	"github.com/samaansync/inventory-service/pkg/broker"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// OrderListener consumes OrderCreated events and records each order line as
// a sell movement through the coordinator, so external sales flow through
// the same policy checks and atomic unit as API-submitted movements.
type OrderListener struct {
	consumer *broker.KafkaConsumer
	uc       transaction.UseCase
	logger   logger.ZapLogger
}

func NewOrderListener(consumer *broker.KafkaConsumer, uc transaction.UseCase, log logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer: consumer,
		uc:       uc,
		logger:   log,
	}
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("Starting order event listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping order event listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID      string             `json:"id"`
	StoreID string             `json:"store_id"`
	Items   []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID  string `json:"product_id"`
	SupplierID string `json:"supplier_id"`
	Quantity   int    `json:"quantity"`
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "OrderCreated" {
		return
	}

	l.logger.Info("Processing OrderCreated event", zap.String("order_id", event.Payload.ID))

	for _, item := range event.Payload.Items {
		input := &dto.MovementInput{
			StoreID:      event.Payload.StoreID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			UpdatedBy:    "system",
			SupplierID:   item.SupplierID,
			MovementType: "sell",
		}

		_, err := l.uc.Process(ctx, input)
		switch {
		case err == nil:
		case errors.Is(err, transaction.ErrStockout):
			l.logger.Warn("Order item rejected by stock policy",
				zap.String("order_id", event.Payload.ID),
				zap.String("product_id", item.ProductID),
			)
		default:
			l.logger.Error("Failed to record sell movement for order item",
				zap.String("order_id", event.Payload.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
