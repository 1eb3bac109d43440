package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse_Defaults(t *testing.T) {
	resp := NewErrorResponse(LineItemInvalidAmount, "trace-123")

	assert.Equal(t, "LINEITEM_002", resp.Error.Code)
	assert.Equal(t, "Amounts must be non-negative numbers", resp.Error.Message)
	assert.Equal(t, "trace-123", resp.Error.TraceID)
	assert.Empty(t, resp.Error.Details)
}

func TestNewErrorResponse_WithOptions(t *testing.T) {
	resp := NewErrorResponse(ValidationGeneral, "trace-456",
		WithMessage("estimated_amount is invalid"),
		WithDetails("estimated_amount: must be non-negative"))

	assert.Equal(t, "estimated_amount is invalid", resp.Error.Message)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "estimated_amount: must be non-negative", resp.Error.Details[0])
}

func TestNewValidationError(t *testing.T) {
	resp := NewValidationError(map[string]string{"label": "is required"}, "trace-789")

	assert.Equal(t, string(ValidationGeneral), resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "label: is required", resp.Error.Details[0])
}

func TestGetHTTPStatus(t *testing.T) {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{LineItemInvalidAmount, http.StatusBadRequest},
		{LineItemAmountTooLarge, http.StatusBadRequest},
		{ValidationGeneral, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthNotReunionOwner, http.StatusForbidden},
		{ReunionNotFound, http.StatusNotFound},
		{LineItemNotFound, http.StatusNotFound},
		{SyncConflict, http.StatusConflict},
		{ReunionInvalidType, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.status, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

func TestErrorResponse_ClientServerClassification(t *testing.T) {
	client := NewErrorResponse(LineItemInvalidAmount, "t")
	assert.True(t, client.IsClientError())
	assert.False(t, client.IsServerError())

	server := NewErrorResponse(SystemDatabaseError, "t")
	assert.False(t, server.IsClientError())
	assert.True(t, server.IsServerError())
}

func TestErrorResponse_ToJSON(t *testing.T) {
	resp := NewErrorResponse(ReunionNotFound, "trace-1")
	data, err := resp.ToJSON()
	require.NoError(t, err)

	var decoded ErrorResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "REUNION_001", decoded.Error.Code)
	assert.Equal(t, "trace-1", decoded.Error.TraceID)
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(SyncConflict))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_001")))
}
