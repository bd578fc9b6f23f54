package room_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lodge/infras/otel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/handlers/room"
	"lodge/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*roomMocks.MockRoomService, http.Handler) {
	t.Helper()

	svc := roomMocks.NewMockRoomService(gomock.NewController(t))
	handler := room.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetRoomByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), "room-1").Return(dto.RoomResponse{ID: "room-1", BasePrice: 500000, AutoPricingEnabled: true}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/room-1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.RoomResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.InDelta(t, 500000.0, body.Data.BasePrice, 0.001)
		assert.Nil(t, body.Data.MinAutoPrice)
	})

	t.Run("missing", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), "room-9").Return(dto.RoomResponse{}, failure.NotFound("room not found"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/room-9", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_UpdateRoomPricing(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name: "bounds set",
			body: `{"auto_pricing_enabled":true,"min_auto_price":300000,"max_auto_price":900000}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().UpdatePricing(gomock.Any(), "room-1", gomock.Any()).
					DoAndReturn(func(_ any, _ string, req dto.UpdatePricingRequest) (dto.RoomResponse, error) {
						assert.True(t, *req.AutoPricingEnabled)
						assert.InDelta(t, 300000.0, *req.MinAutoPrice, 0.001)
						assert.InDelta(t, 900000.0, *req.MaxAutoPrice, 0.001)

						return dto.RoomResponse{ID: "room-1", RepriceQueued: true}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing toggle",
			body:      `{"min_auto_price":300000}`,
			setupMock: func(_ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "negative bound",
			body:      `{"auto_pricing_enabled":true,"max_auto_price":-1}`,
			setupMock: func(_ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inverted bounds",
			body: `{"auto_pricing_enabled":true,"min_auto_price":900000,"max_auto_price":300000}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().UpdatePricing(gomock.Any(), "room-1", gomock.Any()).
					Return(dto.RoomResponse{}, failure.BadRequestFromString("min_auto_price must not exceed max_auto_price"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/rooms/room-1/pricing", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
