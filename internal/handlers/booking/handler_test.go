package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/handlers/booking"
	"lodge/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetBookingByID(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any(), "bk-1").Return(dto.BookingResponse{ID: "bk-1", Status: "confirmed", RoomIDs: []string{"room-1"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/bk-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"room-1"}, body.Data.RoomIDs)
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "cancelled",
			body: `{"status":"cancelled"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().ChangeStatus(gomock.Any(), "bk-1", dto.UpdateStatusRequest{Status: "cancelled"}).
					Return(dto.BookingResponse{ID: "bk-1", Status: "cancelled", EventsQueued: 4}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown status",
			body:      `{"status":"archived"}`,
			setupMock: func(_ *bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown booking",
			body: `{"status":"confirmed"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().ChangeStatus(gomock.Any(), "bk-1", gomock.Any()).Return(dto.BookingResponse{}, failure.NotFound("booking not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/bookings/bk-1/status", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
