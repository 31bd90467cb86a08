package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestOK(t *testing.T) {
	_, c, rec := setupEcho()

	err := OK(c, map[string]int{"routesSearched": 4})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"routesSearched":4}`, rec.Body.String())
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid body", InvalidRequestBody, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody},
		{"bad gateway", BadGateway, http.StatusBadGateway, CodeUpstreamFailed, MsgUpstreamFailed},
		{"gateway timeout", GatewayTimeout, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout},
		{"cancelled", RequestCancelled, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled},
		{"internal", InternalServerError, http.StatusInternalServerError, CodeInternalError, MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			result := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMsg, result.Message)
			assert.Empty(t, result.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"origin":       "origin is required",
		"outboundDate": "outboundDate must be in YYYY-MM-DD format",
	}
	err := ValidationError(c, details)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestValidationErrorWithMessage(t *testing.T) {
	_, c, rec := setupEcho()

	err := ValidationErrorWithMessage(c, "limit: must be between 1 and 500")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, "limit: must be between 1 and 500", result.Message)
}
