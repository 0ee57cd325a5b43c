package advertiser

import (
	"net/http"

	"adscape/infras/otel"
	"adscape/internal/domains/advertiser/model"
	"adscape/internal/domains/advertiser/model/dto"
	"adscape/internal/domains/advertiser/service"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/validator"
	"adscape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Advertiser
	otel    otel.Otel
}

func New(service service.Advertiser, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/advertisers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAdvertiser)
		routerGroup.Get("/", handler.GetAdvertisers)
		routerGroup.Get("/{id}", handler.GetAdvertiserByID)
	})
}

// CreateAdvertiser registers a new advertiser.
// @Summary Register an advertiser
// @Tags Advertiser
// @Accept json
// @Produce json
// @Param request body dto.CreateAdvertiserRequest true "Create Advertiser Request"
// @Success 201 {object} response.Data[dto.AdvertiserResponse] "Advertiser created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/advertisers [post]
func (handler *Handler) CreateAdvertiser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdvertiser")
	defer scope.End()

	req := dto.CreateAdvertiserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	advertiser, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create advertiser")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Advertiser created " + advertiser.ID)

	response.WithJSON(w, http.StatusCreated, advertiser)
}

// GetAdvertisers lists advertisers.
// @Summary Get all advertisers
// @Tags Advertiser
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param company_name query string false "Filter by company name (contains)"
// @Success 200 {object} response.Data[dto.GetAdvertisersResponse] "List of advertisers"
// @Failure 500 {object} response.Error
// @Router /v1/advertisers [get]
func (handler *Handler) GetAdvertisers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdvertisers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldCompanyName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCompanyName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	advertisers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get advertisers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, advertisers)
}

// GetAdvertiserByID retrieves an advertiser by its ID.
// @Summary Get an advertiser by ID
// @Tags Advertiser
// @Produce json
// @Param id path string true "Advertiser ID"
// @Success 200 {object} response.Data[dto.AdvertiserResponse] "Advertiser details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/advertisers/{id} [get]
func (handler *Handler) GetAdvertiserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdvertiserByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	advertiser, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get advertiser by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, advertiser)
}
