package event

import (
	"context"
	"net/http"

	"adscape/config"
	"adscape/infras/kafka"
	"adscape/infras/otel"
	bookingModel "adscape/internal/domains/booking/model"
	bookingService "adscape/internal/domains/booking/service"
	"adscape/shared/constant"
	"adscape/shared/failure"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer feeds booking approvals from Kafka into the booking service.
type Consumer interface {
	// Start blocks until ctx is done. It returns at once when Kafka is disabled.
	Start(ctx context.Context)
	HandleApproval(ctx context.Context, message kafkaGo.Message)
	// Close flushes events still buffered for publishing.
	Close() error
}

type consumerImpl struct {
	cfg     *config.Config
	kafka   kafka.Client
	booking bookingService.Booking
	otel    otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, booking bookingService.Booking, otel otel.Otel) Consumer {
	return &consumerImpl{
		cfg:     cfg,
		kafka:   kafka,
		booking: booking,
		otel:    otel,
	}
}

func (c *consumerImpl) Start(ctx context.Context) {
	topic := c.cfg.Kafka.Topics.BookingApprovals

	if !c.cfg.Kafka.Enable || topic == "" {
		log.Info().Msg("Kafka approvals consumer disabled")

		return
	}

	log.Info().Str("topic", topic).Msg("Starting booking approvals consumer")

	c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, topic, c.HandleApproval)
}

// HandleApproval approves the booking named by the message. The key is used when the body has no booking_id.
// Approving an already scheduled booking is logged and dropped so redeliveries stay harmless.
func (c *consumerImpl) HandleApproval(ctx context.Context, message kafkaGo.Message) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleApproval")
	defer scope.End()

	approval, err := kafka.Decode[bookingModel.Approval](message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", string(message.Key)).Msg("dropping malformed approval")

		return
	}

	if approval.BookingID == "" {
		approval.BookingID = string(message.Key)
	}

	scope.SetAttribute("booking_id", approval.BookingID)

	ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextInternal)

	err = c.booking.ApproveBooking(ctx, approval.BookingID)

	switch {
	case err == nil:
		log.Info().Str("booking_id", approval.BookingID).Msg("booking approved from event")
	case failure.HasCode(err, http.StatusConflict), failure.HasCode(err, http.StatusNotFound):
		log.Warn().Err(err).Str("booking_id", approval.BookingID).Msg("approval ignored")
	default:
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", approval.BookingID).Msg("failed to approve booking from event")
	}
}

func (c *consumerImpl) Close() error {
	return c.kafka.Close() //nolint:wrapcheck
}
