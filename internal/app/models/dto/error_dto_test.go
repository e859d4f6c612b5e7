package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponseEnvelope(t *testing.T) {
	resp := NewErrorResponse(NewErrorDetail(ErrorCodeResourceNotFound, "Course not found"))

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, false, decoded["success"])
	assert.Contains(t, decoded, "timestamp")

	errObj, ok := decoded["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RES_001", errObj["code"])
	assert.Equal(t, "Course not found", errObj["message"])
	assert.Equal(t, "ERROR", errObj["severity"])
	// Details are omitted unless set
	assert.NotContains(t, errObj, "details")
}

func TestErrorDetailWithDetails(t *testing.T) {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").
		WithDetails(map[string]string{"email": "invalid format"})

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	details, ok := decoded["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "invalid format", details["email"])
}
