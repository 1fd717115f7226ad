package promo

import (
	"bookit/infras/otel"
	"bookit/internal/domains/promo/model/dto"
	"bookit/internal/domains/promo/service"
	"bookit/shared/constant"
	"bookit/shared/validator"
	"bookit/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	messagePromoApplied = "Promo code applied successfully"
	messagePromoInvalid = "Invalid promo code"
)

type Handler struct {
	service service.Promo
	otel    otel.Otel
}

func New(service service.Promo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/promo", func(routerGroup chi.Router) {
		routerGroup.Post("/validate", handler.ValidatePromo)
	})
}

// ValidatePromo checks a promo code against a subtotal.
// @Summary Validate a promo code
// @Description An unknown code is answered with 200 and success false.
// @Tags Promo
// @Accept json
// @Produce json
// @Param request body dto.ValidatePromoRequest true "Validate Promo Request"
// @Success 200 {object} response.Data[dto.ValidatePromoResponse]
// @Failure 400 {object} response.Error
// @Router /api/promo/validate [post]
func (handler *Handler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidatePromo")
	defer scope.End()

	req := dto.ValidatePromoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res := handler.service.Validate(ctx, req)
	if !res.Valid {
		response.WithJSONMessage(w, http.StatusOK, false, messagePromoInvalid, res)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, true, messagePromoApplied, res)
}
