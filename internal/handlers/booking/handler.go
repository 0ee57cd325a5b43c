package booking

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"adscape/infras/otel"
	"adscape/internal/domains/booking/model"
	"adscape/internal/domains/booking/model/dto"
	"adscape/internal/domains/booking/service"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"
	"adscape/shared/validator"
	"adscape/transport/http/middleware"
	"adscape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFileAdImage = "ad_image"

type Handler struct {
	service service.Booking
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Delete("/{id}", handler.CancelBooking)
		routerGroup.With(handler.auth.APIKey).Post("/{id}/approve", handler.ApproveBooking)
	})
}

// CreateBooking books a billboard for an advertiser.
// @Summary Create a booking
// @Description Book an available billboard. The billboard stays unavailable until the booking is cancelled.
// @Description The creative is either uploaded as ad_image or referenced with asset_ref.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param advertiser_id formData string true "Advertiser ID"
// @Param billboard_id formData string true "Billboard ID"
// @Param start_date formData string true "Start date (YYYY-MM-DD)"
// @Param end_date formData string true "End date (YYYY-MM-DD)"
// @Param asset_ref formData string false "Reference to an existing creative"
// @Param ad_image formData file false "Creative to upload"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req, cleanup, err := handler.bindCreateRequest(r)
	defer cleanup()

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.CreateBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + booking.ID + " created by " + user)

	response.WithJSON(w, http.StatusCreated, booking)
}

// bindCreateRequest reads a multipart form, or a JSON body when the client sends one.
func (handler *Handler) bindCreateRequest(r *http.Request) (dto.CreateBookingRequest, func(), error) {
	req := dto.CreateBookingRequest{}
	cleanup := func() {}

	if !strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		return req, cleanup, validator.Validate(r.Body, &req)
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, cleanup, failure.BadRequest(err) //nolint:wrapcheck
	}

	req.AdvertiserID = r.FormValue(model.FieldAdvertiserID)
	req.BillboardID = r.FormValue(model.FieldBillboardID)
	req.StartDate = r.FormValue(model.FieldStartDate)
	req.EndDate = r.FormValue(model.FieldEndDate)
	req.AssetRef = r.FormValue(dto.FieldAssetRef)

	file, fileHeader, err := r.FormFile(formFileAdImage)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return req, cleanup, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err == nil {
		req.AdImage = fileHeader
		req.AdImageFile = file
		cleanup = closer(file)
	}

	return req, cleanup, validator.ValidateStruct(&req)
}

func closer(file multipart.File) func() {
	return func() {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close uploaded file")
		}
	}
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (Pending, Scheduled, Cancelled)"
// @Param billboard_id query string false "Filter by billboard ID"
// @Param advertiser_id query string false "Filter by advertiser ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetAll(ctx, queryParams, filterFromRequest(r, model.FieldAdvertiserID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// filterFromRequest builds equality filters on the bookings table from the status and
// billboard_id query parameters, plus any extra fields given.
func filterFromRequest(r *http.Request, extra ...string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	fields := append([]string{model.FieldStatus, model.FieldBillboardID}, extra...)

	for _, field := range fields {
		value := r.URL.Query().Get(field)
		if value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a booking and frees its billboard.
// @Summary Cancel a booking
// @Description Cancel a booking, release its billboard and detach its creative.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CancelBooking(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + id + " cancelled by " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// ApproveBooking moves a pending booking to Scheduled.
// @Summary Approve a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking approved successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/approve [post]
// @Security ApiKeyAuth
func (handler *Handler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.ApproveBooking(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + id + " approved")

	response.WithMessage(w, http.StatusOK, "Booking approved successfully")
}
