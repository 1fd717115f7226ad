package promo_test

import (
	otelMocks "bookit/infras/otel/mocks"
	"bookit/internal/domains/promo/mocks"
	"bookit/internal/domains/promo/model/dto"
	"bookit/internal/handlers/promo"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_ValidatePromo(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setupMock   func(svc *mocks.MockPromoService)
		wantCode    int
		wantSuccess bool
		wantMessage string
	}{
		{
			name: "valid code",
			body: `{"code":"SAVE10","subtotal":2000}`,
			setupMock: func(svc *mocks.MockPromoService) {
				svc.EXPECT().Validate(gomock.Any(), dto.ValidatePromoRequest{Code: "SAVE10", Subtotal: 2000}).
					Return(dto.ValidatePromoResponse{Valid: true, Discount: 200, NewTotal: 1800})
			},
			wantCode:    http.StatusOK,
			wantSuccess: true,
			wantMessage: "Promo code applied successfully",
		},
		{
			name: "unknown code is still 200",
			body: `{"code":"BOGUS","subtotal":2000}`,
			setupMock: func(svc *mocks.MockPromoService) {
				svc.EXPECT().Validate(gomock.Any(), gomock.Any()).
					Return(dto.ValidatePromoResponse{Valid: false, Discount: 0, NewTotal: 2000})
			},
			wantCode:    http.StatusOK,
			wantSuccess: false,
			wantMessage: "Invalid promo code",
		},
		{
			name:        "missing code",
			body:        `{"subtotal":2000}`,
			setupMock:   func(_ *mocks.MockPromoService) {},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid request data",
		},
		{
			name:        "zero subtotal",
			body:        `{"code":"SAVE10","subtotal":0}`,
			setupMock:   func(_ *mocks.MockPromoService) {},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockPromoService(ctrl)
			tt.setupMock(svc)

			handler := promo.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/promo/validate", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			body := map[string]any{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantSuccess, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}
