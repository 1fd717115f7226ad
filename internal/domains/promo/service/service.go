package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Promo=MockPromoService

import (
	"bookit/infras/otel"
	"bookit/internal/domains/pricing"
	"bookit/internal/domains/promo/model/dto"
	"bookit/shared/constant"
	"context"

	"github.com/rs/zerolog/log"
)

type Promo interface {
	Validate(ctx context.Context, req dto.ValidatePromoRequest) dto.ValidatePromoResponse
}

type serviceImpl struct {
	calc pricing.Calculator
	otel otel.Otel
}

func New(calc pricing.Calculator, otel otel.Otel) Promo {
	return &serviceImpl{
		calc: calc,
		otel: otel,
	}
}

// Validate reports the discount a code gives on subtotal. An unknown code is not an
// error; it yields a zero discount and the subtotal unchanged.
func (s *serviceImpl) Validate(ctx context.Context, req dto.ValidatePromoRequest) dto.ValidatePromoResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".promo.Validate")
	defer scope.End()

	discount, ok := s.calc.Discount(req.Code, req.Subtotal)

	scope.SetAttributes(map[string]any{
		"promo.code":  pricing.NormalizeCode(req.Code),
		"promo.valid": ok,
	})

	log.Debug().Str("code", req.Code).Bool("valid", ok).Int("discount", discount).Msg("promo code checked")

	return dto.ValidatePromoResponse{
		Valid:    ok,
		Discount: discount,
		NewTotal: req.Subtotal - discount,
	}
}
