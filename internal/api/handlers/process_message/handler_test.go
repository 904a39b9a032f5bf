package process_message

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	processMessage "github.com/m04kA/HMS-ChatbotService/internal/usecase/process_message"
)

type stubUseCase struct {
	resp *processMessage.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *processMessage.Request) (*processMessage.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{
		resp: &processMessage.Response{
			SessionID: "user-1",
			Reply:     "How may I help you today?",
			Options:   []string{"Book Appointment", "Cancel Appointment"},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(t, handler, `{"userId": "user-1", "text": "hi"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.SessionID)
	assert.Equal(t, "How may I help you today?", resp.Reply)
	assert.Len(t, resp.Buttons, 2)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	rec := doRequest(t, handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_EmptyMessage(t *testing.T) {
	uc := &stubUseCase{
		err: fmt.Errorf("%w: message is required", processMessage.ErrInvalidInput),
	}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(t, handler, `{"userId": "user-1", "text": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{
		err: fmt.Errorf("%w: session store unavailable", processMessage.ErrInternal),
	}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(t, handler, `{"userId": "user-1", "text": "hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
