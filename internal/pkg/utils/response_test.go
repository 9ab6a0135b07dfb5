package utils

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildErrorResponse_IncludesDevMessageOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	recorder := httptest.NewRecorder()

	BuildErrorResponse(zap.NewNop(), recorder, exceptions.ErrStaffNotFound(fmt.Errorf("staff 123")))

	assert.Equal(t, constvars.StatusNotFound, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["dev_message"], "staff 123")
}

func TestBuildErrorResponse_HidesDevMessageInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	recorder := httptest.NewRecorder()

	BuildErrorResponse(zap.NewNop(), recorder, exceptions.ErrStaffNotFound(fmt.Errorf("staff 123")))

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotContains(t, body, "dev_message")
}
