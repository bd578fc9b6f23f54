package pricing_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lodge/infras/otel/mocks"
	pricingMocks "lodge/internal/domains/pricing/mocks"
	"lodge/internal/domains/pricing/model"
	"lodge/internal/domains/pricing/model/dto"
	"lodge/internal/handlers/pricing"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success          bool            `json:"success"`
	Data             json.RawMessage `json:"data"`
	Error            string          `json:"error"`
	ProcessingTimeMs *float64        `json:"processing_time_ms"`
}

func setup(t *testing.T) (*pricingMocks.MockPricing, http.Handler) {
	t.Helper()

	svc := pricingMocks.NewMockPricing(gomock.NewController(t))
	handler := pricing.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func do(t *testing.T, router http.Handler, path, body string) (int, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec.Code, env
}

func TestHandler_Calculate(t *testing.T) {
	night := time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		body        string
		setupMock   func(svc *pricingMocks.MockPricing)
		wantCode    int
		wantSuccess bool
	}{
		{
			name: "calculated",
			body: `{"room_id":"room-1","date":"2026-10-27","force_recalculate":true}`,
			setupMock: func(svc *pricingMocks.MockPricing) {
				svc.EXPECT().Calculate(gomock.Any(), "room-1", night, true).Return(model.PricingFactors{RoomID: "room-1", CalculatedPrice: 750000}, nil)
			},
			wantCode:    http.StatusOK,
			wantSuccess: true,
		},
		{
			name: "date defaults to today",
			body: `{"room_id":"room-1"}`,
			setupMock: func(svc *pricingMocks.MockPricing) {
				svc.EXPECT().Calculate(gomock.Any(), "room-1", timezone.Today(), false).Return(model.PricingFactors{RoomID: "room-1"}, nil)
			},
			wantCode:    http.StatusOK,
			wantSuccess: true,
		},
		{
			name:      "missing room id",
			body:      `{"date":"2026-10-27"}`,
			setupMock: func(_ *pricingMocks.MockPricing) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed date",
			body:      `{"room_id":"room-1","date":"27-10-2026"}`,
			setupMock: func(_ *pricingMocks.MockPricing) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			body: `{"room_id":"ghost","date":"2026-10-27"}`,
			setupMock: func(svc *pricingMocks.MockPricing) {
				svc.EXPECT().Calculate(gomock.Any(), "ghost", night, false).Return(model.PricingFactors{}, failure.NotFound("room ghost not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			code, env := do(t, router, "/calculate", tt.body)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantSuccess, env.Success)
			require.NotNil(t, env.ProcessingTimeMs)

			if !tt.wantSuccess {
				assert.NotEmpty(t, env.Error)
			}
		})
	}
}

func TestHandler_BatchCalculate_PartialFailure(t *testing.T) {
	svc, router := setup(t)

	factors := model.PricingFactors{RoomID: "room-1", CalculatedPrice: 600000}

	svc.EXPECT().BatchCalculate(gomock.Any(), []string{"room-1", "ghost"}, gomock.Any(), false).Return([]dto.BatchItem{
		{RoomID: "room-1", Success: true, Data: &factors},
		{RoomID: "ghost", Success: false, Error: "room ghost not found"},
	})

	code, env := do(t, router, "/batch-calculate", `{"room_ids":["room-1","ghost"]}`)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	require.NotNil(t, env.ProcessingTimeMs)

	var items []dto.BatchItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)

	assert.True(t, items[0].Success)
	assert.Equal(t, 600000.0, items[0].Data.CalculatedPrice)
	assert.False(t, items[1].Success)
	assert.Equal(t, "room ghost not found", items[1].Error)
}

func TestHandler_BatchCalculate_EmptyRooms(t *testing.T) {
	_, router := setup(t)

	code, env := do(t, router, "/batch-calculate", `{"room_ids":[]}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
}
