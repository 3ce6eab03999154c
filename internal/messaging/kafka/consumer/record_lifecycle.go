package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-arquivo/internal/events"
	"go-arquivo/internal/movement"
)

// ConsumeRecordLifecycle appends an audit movement for every lifecycle
// event. Replayed events are detected by the movement reference (the
// event id) and skipped.
func ConsumeRecordLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	movementService movement.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.record_lifecycle")
	log.Info("record lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("record lifecycle consumer stopped")
				return
			}
			log.Error("fetch record lifecycle message failed", zap.Error(err))
			continue
		}

		req, actor, ok := movementFromMessage(msg, log)
		if !ok {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = movementService.Record(ctx, actor, req)
		if err != nil {
			if errors.Is(err, movement.ErrDuplicateReference) {
				log.Warn("lifecycle event already recorded, skipping",
					zap.String("reference", req.Reference),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("record lifecycle movement failed",
				zap.String("reference", req.Reference),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit record lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("movement recorded from lifecycle event",
			zap.String("action", req.Action),
			zap.String("reference", req.Reference),
		)
	}
}

func movementFromMessage(msg kafkago.Message, log *zap.Logger) (movement.RecordMovementRequest, string, bool) {
	eventType := ""
	for _, h := range msg.Headers {
		if h.Key == "event_type" {
			eventType = string(h.Value)
		}
	}

	switch eventType {
	case events.TypeEmployeeTerminated:
		var e events.EmployeeTerminatedEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			log.Error("decode employee_terminated event failed", zap.Error(err))
			return movement.RecordMovementRequest{}, "", false
		}
		return movement.RecordMovementRequest{
			Action:    "TERMINATION",
			Reference: e.EventID,
			ItemLabel: e.EmployeeName,
			FromUnit:  e.FreedPosition,
			Note:      "termination on " + e.TerminationDate,
		}, e.Actor, true

	case events.TypeRecordArchived:
		var e events.RecordArchivedEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			log.Error("decode record_archived event failed", zap.Error(err))
			return movement.RecordMovementRequest{}, "", false
		}
		return movement.RecordMovementRequest{
			Action:    "ARCHIVE_TRANSFER",
			Reference: e.EventID,
			ItemLabel: e.EmployeeName,
			ToUnit:    e.BoxNumber,
		}, e.Actor, true

	case events.TypeLoanReturned:
		var e events.LoanReturnedEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			log.Error("decode loan_returned event failed", zap.Error(err))
			return movement.RecordMovementRequest{}, "", false
		}
		return movement.RecordMovementRequest{
			Action:    "LOAN_RETURN",
			Reference: e.EventID,
			ItemLabel: e.EmployeeName,
			FromUnit:  e.Requester,
		}, e.Actor, true

	default:
		log.Warn("unknown record lifecycle event type", zap.String("event_type", eventType))
		return movement.RecordMovementRequest{}, "", false
	}
}
