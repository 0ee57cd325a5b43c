package broadcast

import (
	"net/http"

	"adscape/infras/otel"
	bookingModel "adscape/internal/domains/booking/model"
	"adscape/internal/domains/broadcast/service"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Broadcast
	otel    otel.Otel
}

func New(service service.Broadcast, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/broadcasts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookingDetails)
		routerGroup.Get("/live", handler.GetLiveBroadcasts)
	})
}

// GetLiveBroadcasts returns what every screen should be playing now.
// @Summary List live broadcasts
// @Description Every Scheduled booking with its billboard, advertiser and creative.
// @Description When storage is unreachable the answer is 503 with an empty, degraded snapshot.
// @Tags Broadcast
// @Produce json
// @Success 200 {object} response.Data[dto.LiveBroadcastsResponse] "Live broadcasts"
// @Failure 503 {object} response.Data[dto.LiveBroadcastsResponse] "Degraded snapshot"
// @Router /v1/broadcasts/live [get]
func (handler *Handler) GetLiveBroadcasts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLiveBroadcasts")
	defer scope.End()

	broadcasts, err := handler.service.ListLiveBroadcasts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("serving degraded live broadcasts")

		response.WithJSON(w, http.StatusServiceUnavailable, broadcasts)

		return
	}

	response.WithJSON(w, http.StatusOK, broadcasts)
}

// GetBookingDetails lists bookings joined with their billboard, advertiser and creative.
// @Summary List booking details
// @Tags Broadcast
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (Pending, Scheduled, Cancelled)"
// @Param billboard_id query string false "Filter by billboard ID"
// @Success 200 {object} response.Data[dto.GetBookingDetailsResponse] "Booking details"
// @Failure 500 {object} response.Error
// @Router /v1/broadcasts [get]
func (handler *Handler) GetBookingDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingDetails")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(bookingModel.FieldStatus)
	billboardID := r.URL.Query().Get(bookingModel.FieldBillboardID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    bookingModel.TableName,
		})
	}

	if billboardID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    bookingModel.FieldBillboardID,
			Operator: gDto.FilterOperatorEq,
			Value:    billboardID,
			Table:    bookingModel.TableName,
		})
	}

	details, err := handler.service.ListBookingDetails(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list booking details")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, details)
}
