package toggle_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	toggleSlot "github.com/m04kA/SMC-ArenaBooking/internal/usecase/toggle_slot"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
)

const sessionID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

type stubUseCase struct {
	got  *toggleSlot.Request
	resp *toggleSlot.Response
	err  error
}

func (s *stubUseCase) Execute(ctx context.Context, req *toggleSlot.Request) (*toggleSlot.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(t *testing.T, uc *stubUseCase, path string) *httptest.ResponseRecorder {
	t.Helper()
	presenter := handlers.NewPresenter(domain.DefaultGrid(), domain.DefaultCatalog())
	router := mux.NewRouter()
	router.HandleFunc("/sessions/{sessionId}/slots/{index}/toggle", NewHandler(uc, presenter, logger.Nop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	return rec
}

func TestHandler_Toggle(t *testing.T) {
	draft := domain.NewDraft(sessionID, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	uc := &stubUseCase{resp: &toggleSlot.Response{Draft: draft, Selected: true, MinSlots: 2}}

	rec := serve(t, uc, "/sessions/"+sessionID+"/slots/20/toggle")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionID, uc.got.SessionID)
	assert.Equal(t, 20, uc.got.Index)

	var body ToggleSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Selected)
	assert.Equal(t, sessionID, body.Session.ID)
}

func TestHandler_ToggleErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		err     error
		status  int
		message string
	}{
		{"bad index", "/sessions/" + sessionID + "/slots/abc/toggle", nil, http.StatusBadRequest, msgInvalidSlot},
		{"unknown session id", "/sessions/nope/slots/1/toggle", nil, http.StatusNotFound, handlers.MsgSessionNotFound},
		{"out of grid", "/sessions/" + sessionID + "/slots/40/toggle", toggleSlot.ErrInvalidSlot, http.StatusBadRequest, msgInvalidSlot},
		{"not consecutive", "/sessions/" + sessionID + "/slots/5/toggle", toggleSlot.ErrNotConsecutive, http.StatusUnprocessableEntity, msgNotConsecutive},
		{"breaks contiguity", "/sessions/" + sessionID + "/slots/5/toggle", toggleSlot.ErrBreaksContiguity, http.StatusUnprocessableEntity, msgBreaksContiguity},
		{"booked", "/sessions/" + sessionID + "/slots/5/toggle", toggleSlot.ErrSlotUnavailable, http.StatusUnprocessableEntity, msgSlotUnavailable},
		{"submitting", "/sessions/" + sessionID + "/slots/5/toggle", toggleSlot.ErrSubmissionInProgress, http.StatusConflict, msgSubmissionInProgress},
		{"session expired", "/sessions/" + sessionID + "/slots/5/toggle", toggleSlot.ErrSessionNotFound, http.StatusNotFound, handlers.MsgSessionNotFound},
		{"internal", "/sessions/" + sessionID + "/slots/5/toggle", toggleSlot.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &stubUseCase{err: tt.err}, tt.path)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			}
		})
	}
}
