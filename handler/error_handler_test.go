package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluid/handler"
	"github.com/dmitrymomot/fluid/pkg/logger"
	"github.com/dmitrymomot/fluid/pkg/requestid"
)

var errTooShort = errors.New("too short")

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	badName := handler.HTTPError{Status: http.StatusBadRequest, Key: "invalid_name", Message: "name is too short"}

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
		level   string
	}{
		{
			name:    "http error",
			err:     handler.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "not_found",
			message: handler.ErrNotFound.Message,
			level:   "WARN",
		},
		{
			name:    "wrapped http error",
			err:     fmt.Errorf("lookup: %w", handler.ErrMethodNotAllowed),
			status:  http.StatusMethodNotAllowed,
			code:    "method_not_allowed",
			message: handler.ErrMethodNotAllowed.Message,
			level:   "WARN",
		},
		{
			name:    "mapped error",
			err:     fmt.Errorf("bind name: %w", errTooShort),
			status:  http.StatusBadRequest,
			code:    "invalid_name",
			message: badName.Message,
			level:   "WARN",
		},
		{
			name:    "unknown error hides its message",
			err:     errors.New("db password is hunter2"),
			status:  http.StatusInternalServerError,
			code:    "internal_error",
			message: http.StatusText(http.StatusInternalServerError),
			level:   "ERROR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithOutput(buf),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			eh := handler.NewErrorHandler(log, handler.WithErrorMapping(errTooShort, badName))

			r := httptest.NewRequest(http.MethodGet, "/fluids", nil)
			r = r.WithContext(requestid.WithContext(r.Context(), "quick-fox-boldly-jumps"))
			rec := httptest.NewRecorder()
			eh(handler.NewContext(rec, r), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body handler.JSONResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.Nil(t, body.Data)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request error", entry["msg"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "quick-fox-boldly-jumps", entry["request_id"])
			assert.Equal(t, "error_handler", entry["component"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, "/fluids", entry["path"])
			assert.Equal(t, tt.err.Error(), entry["error"])
		})
	}
}

func TestNewErrorHandler_NilLogger(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(nil)
	rec := httptest.NewRecorder()
	eh(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	resp := handler.JSONError(handler.ErrNotFound, handler.WithJSONStatus(http.StatusGone), handler.WithJSONMeta(map[string]any{"hint": "moved"}))
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.JSONEq(t, `{"meta":{"hint":"moved"},"error":{"code":"not_found","message":"resource not found"}}`, rec.Body.String())
	assert.False(t, strings.Contains(rec.Body.String(), `"data"`))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, handler.ErrNotFound, handler.Classify(fmt.Errorf("x: %w", handler.ErrNotFound)))
	assert.Equal(t, handler.ErrInternal, handler.Classify(errors.New("x")))
}
