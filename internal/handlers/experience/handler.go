package experience

import (
	"bookit/infras/otel"
	"bookit/internal/domains/experience/model/dto"
	"bookit/internal/domains/experience/service"
	"bookit/shared"
	"bookit/shared/constant"
	"bookit/shared/failure"
	"bookit/shared/validator"
	"bookit/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Experience
	otel    otel.Otel
}

func New(service service.Experience, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/experiences", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetExperiences)
		routerGroup.Get("/{id}", handler.GetExperienceByID)
	})
}

// GetExperiences lists experiences.
// @Summary List experiences
// @Description List experiences, newest first, optionally filtered by a search term, a location and an inclusive price range.
// @Tags Experience
// @Produce json
// @Param search query string false "Matches title, description or category"
// @Param location query string false "Location substring"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Success 200 {object} response.Data[[]dto.ExperienceResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/experiences [get]
func (handler *Handler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExperiences")
	defer scope.End()

	filter, err := filterFromRequest(r)
	if err == nil {
		err = validator.ValidateStruct(&filter)
	}

	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid experience filter")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get experiences")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, res.Experiences, res.Count)
}

// GetExperienceByID returns one experience with its upcoming slots.
// @Summary Get an experience
// @Description Get an experience and its slots dated today or later, ordered by date and time.
// @Tags Experience
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} response.Data[dto.ExperienceDetailResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/experiences/{id} [get]
func (handler *Handler) GetExperienceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExperienceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get experience")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func filterFromRequest(r *http.Request) (dto.ExperienceFilter, error) {
	query := r.URL.Query()

	filter := dto.ExperienceFilter{
		Search:   query.Get(constant.RequestParamSearch),
		Location: query.Get(constant.RequestParamLocation),
	}

	minPrice, err := shared.ConvertStringToInt(query.Get(constant.RequestParamMinPrice))
	if err != nil {
		return filter, failure.BadRequestFromString(constant.RequestParamMinPrice + " must be a number") // nolint:wrapcheck
	}

	maxPrice, err := shared.ConvertStringToInt(query.Get(constant.RequestParamMaxPrice))
	if err != nil {
		return filter, failure.BadRequestFromString(constant.RequestParamMaxPrice + " must be a number") // nolint:wrapcheck
	}

	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice

	return filter, nil
}
