package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lic-events/vbs-api/internal/api/handler/v1/response"
	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/service"
)

type stubParticipantService struct {
	participant domain.Participant
	err         error
}

func (s *stubParticipantService) CreateParticipant(context.Context, domain.Participant) (domain.Participant, error) {
	return s.participant, s.err
}

func (s *stubParticipantService) GetParticipant(context.Context, uint) (domain.Participant, error) {
	return s.participant, s.err
}

func (s *stubParticipantService) ListParticipants(context.Context, string, string) ([]domain.Participant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Participant{s.participant}, nil
}

func (s *stubParticipantService) UpdateParticipant(context.Context, domain.Participant) (domain.Participant, error) {
	return s.participant, s.err
}

type stubAttendanceService struct {
	checkIn domain.CheckInResult
	pickup  domain.PickupResult
	status  domain.AttendanceStatus
	err     error
}

func (s *stubAttendanceService) Admit(context.Context, uint) (domain.CheckInResult, error) {
	return s.checkIn, s.err
}

func (s *stubAttendanceService) Pickup(context.Context, uint, string) (domain.PickupResult, error) {
	return s.pickup, s.err
}

func (s *stubAttendanceService) Status(context.Context, uint) (domain.AttendanceStatus, error) {
	return s.status, s.err
}

func newParticipantRouter(svc ParticipantService, attendance AttendanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewParticipantHandler(svc, attendance)

	router := gin.New()
	router.GET("/participants/:id", handler.HandleGetParticipant)
	router.GET("/participants/:id/status", handler.HandleGetParticipantStatus)
	router.POST("/participants/:id/admit", handler.HandleAdmitParticipant)
	router.POST("/participants/:id/pickup", handler.HandlePickupParticipant)

	return router
}

func TestParticipantHandler_HandleAdmitParticipant(t *testing.T) {
	t.Run("fresh admit returns the pickup code", func(t *testing.T) {
		attendance := &stubAttendanceService{
			checkIn: domain.CheckInResult{
				EventDay:    domain.Day1,
				CheckedInAt: time.Now(),
				PickupCode:  54321,
			},
		}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/7/admit", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.AdmitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Attendance recorded successfully", resp.Detail)
		assert.Equal(t, 54321, resp.PickupCode)
		assert.False(t, resp.AlreadyRecorded)
	})

	t.Run("repeat admit reports already recorded without a code", func(t *testing.T) {
		attendance := &stubAttendanceService{
			checkIn: domain.CheckInResult{
				EventDay:        domain.Day1,
				AlreadyRecorded: true,
			},
		}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/7/admit", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.AdmitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "This participant has already been marked as present for today.", resp.Detail)
		assert.True(t, resp.AlreadyRecorded)
		assert.Zero(t, resp.PickupCode)
		assert.NotContains(t, w.Body.String(), "pickup_code")
	})

	t.Run("non-event date is a bad request", func(t *testing.T) {
		attendance := &stubAttendanceService{err: service.ErrNotEventDate}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/7/admit", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "valid VBS date")
	})

	t.Run("unknown participant is not found", func(t *testing.T) {
		attendance := &stubAttendanceService{err: service.ErrParticipantNotFound}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/999/admit", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed ID is a bad request", func(t *testing.T) {
		router := newParticipantRouter(&stubParticipantService{}, &stubAttendanceService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/abc/admit", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParticipantHandler_HandlePickupParticipant(t *testing.T) {
	t.Run("fresh pickup is recorded", func(t *testing.T) {
		attendance := &stubAttendanceService{
			pickup: domain.PickupResult{
				EventDay:     domain.Day1,
				PickedUpAt:   time.Now(),
				PickupPerson: "Kofi Mensah",
			},
		}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/7/pickup",
			strings.NewReader(`{"pickup_person": "Kofi Mensah"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.PickupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Pickup recorded successfully", resp.Detail)
		assert.False(t, resp.AlreadyRecorded)
	})

	t.Run("repeat pickup reports already recorded", func(t *testing.T) {
		attendance := &stubAttendanceService{
			pickup: domain.PickupResult{
				EventDay:        domain.Day1,
				AlreadyRecorded: true,
			},
		}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/7/pickup",
			strings.NewReader(`{"pickup_person": "Kofi Mensah"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.PickupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "This participant has already been marked as picked up today.", resp.Detail)
		assert.True(t, resp.AlreadyRecorded)
	})

	t.Run("missing pickup person is a bad request", func(t *testing.T) {
		router := newParticipantRouter(&stubParticipantService{}, &stubAttendanceService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/7/pickup",
			strings.NewReader(`{"pickup_person": ""}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-event date is a bad request", func(t *testing.T) {
		attendance := &stubAttendanceService{err: service.ErrNotEventDate}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/participants/7/pickup",
			strings.NewReader(`{"pickup_person": "Kofi Mensah"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "valid VBS date")
	})
}

func TestParticipantHandler_HandleGetParticipantStatus(t *testing.T) {
	t.Run("returns today's state", func(t *testing.T) {
		checkedInAt := time.Date(2026, 8, 4, 8, 30, 0, 0, time.UTC)
		attendance := &stubAttendanceService{
			status: domain.AttendanceStatus{
				EventDay:    domain.Day1,
				CheckedIn:   true,
				CheckedInAt: &checkedInAt,
				PickupCode:  54321,
			},
		}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/participants/7/status", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got domain.AttendanceStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.CheckedIn)
		assert.Equal(t, 54321, got.PickupCode)
		assert.False(t, got.PickedUp)
	})

	t.Run("non-event date is a bad request", func(t *testing.T) {
		attendance := &stubAttendanceService{err: service.ErrNotEventDate}
		router := newParticipantRouter(&stubParticipantService{}, attendance)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/participants/7/status", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParticipantHandler_HandleGetParticipant(t *testing.T) {
	t.Run("returns the participant", func(t *testing.T) {
		svc := &stubParticipantService{
			participant: domain.Participant{ID: 7, FirstName: "Ama", LastName: "Mensah"},
		}
		router := newParticipantRouter(svc, &stubAttendanceService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/participants/7", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got domain.Participant
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Ama Mensah", got.FullName())
	})

	t.Run("unknown participant is not found", func(t *testing.T) {
		svc := &stubParticipantService{err: service.ErrParticipantNotFound}
		router := newParticipantRouter(svc, &stubAttendanceService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/participants/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
