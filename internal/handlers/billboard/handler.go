package billboard

import (
	"net/http"
	"strconv"

	"adscape/infras/otel"
	"adscape/internal/domains/billboard/model"
	"adscape/internal/domains/billboard/model/dto"
	"adscape/internal/domains/billboard/service"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"
	"adscape/shared/validator"
	"adscape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billboard
	otel    otel.Otel
}

func New(service service.Billboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/billboards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBillboard)
		routerGroup.Get("/", handler.GetBillboards)
		routerGroup.Get("/{id}", handler.GetBillboardByID)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Patch("/{id}", handler.UpdateBillboard)
		routerGroup.Delete("/{id}", handler.DeleteBillboard)
	})
}

// CreateBillboard registers a new billboard.
// @Summary Register a billboard
// @Description Register a new billboard. New billboards are always available.
// @Tags Billboard
// @Accept json
// @Produce json
// @Param request body dto.CreateBillboardRequest true "Create Billboard Request"
// @Success 201 {object} response.Data[dto.BillboardResponse] "Billboard created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards [post]
func (handler *Handler) CreateBillboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBillboard")
	defer scope.End()

	req := dto.CreateBillboardRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	billboard, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create billboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboard created " + billboard.ID)

	response.WithJSON(w, http.StatusCreated, billboard)
}

// GetBillboards lists billboards.
// @Summary Get all billboards
// @Description Retrieve billboards with optional location and availability filters.
// @Tags Billboard
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by location (contains)"
// @Param availability query bool false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetBillboardsResponse] "List of billboards"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards [get]
func (handler *Handler) GetBillboards(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillboards")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if availability := r.URL.Query().Get(model.FieldAvailability); availability != "" {
		available, err := strconv.ParseBool(availability)
		if err != nil {
			err = failure.BadRequestFromString("availability must be true or false")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailability,
			Operator: gDto.FilterOperatorEq,
			Value:    available,
			Table:    model.TableName,
		})
	}

	billboards, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billboards")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboards retrieved successfully")

	response.WithJSON(w, http.StatusOK, billboards)
}

// GetBillboardByID retrieves a billboard by its ID.
// @Summary Get a billboard by ID
// @Tags Billboard
// @Produce json
// @Param id path string true "Billboard ID"
// @Success 200 {object} response.Data[dto.BillboardResponse] "Billboard details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards/{id} [get]
func (handler *Handler) GetBillboardByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillboardByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	billboard, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billboard by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, billboard)
}

// GetAvailability reports whether a billboard can be booked.
// @Summary Get billboard availability
// @Tags Billboard
// @Produce json
// @Param id path string true "Billboard ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Billboard availability"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	availability, err := handler.service.GetAvailability(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billboard availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateBillboard updates the descriptive fields of a billboard.
// @Summary Update a billboard by ID
// @Description Availability cannot be changed here, it follows the booking ledger.
// @Tags Billboard
// @Accept json
// @Produce json
// @Param id path string true "Billboard ID"
// @Param request body dto.UpdateBillboardRequest true "Update Billboard Request"
// @Success 200 {object} response.Message "Billboard updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards/{id} [patch]
func (handler *Handler) UpdateBillboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBillboard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBillboardRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update billboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboard updated " + id)

	response.WithMessage(w, http.StatusOK, "Billboard updated successfully")
}

// DeleteBillboard removes a billboard that is not booked.
// @Summary Delete a billboard by ID
// @Description Refused with 409 while a non-cancelled booking holds the billboard.
// @Tags Billboard
// @Produce json
// @Param id path string true "Billboard ID"
// @Success 200 {object} response.Message "Billboard deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards/{id} [delete]
func (handler *Handler) DeleteBillboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBillboard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete billboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboard deleted " + id)

	response.WithMessage(w, http.StatusOK, "Billboard deleted successfully")
}
