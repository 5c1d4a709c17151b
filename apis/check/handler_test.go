package check

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zinan-c/empty-checker/pkg/emptiness"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcess_Classification(t *testing.T) {
	tests := []struct {
		name            string
		request         CheckRequest
		expectedEmpty   bool
		expectedMessage string
	}{
		{
			name:            "absent data is empty",
			request:         CheckRequest{Data: emptiness.Absent(), CheckEmpty: true},
			expectedEmpty:   true,
			expectedMessage: MessageDataIsEmpty,
		},
		{
			name:            "whitespace string is empty",
			request:         CheckRequest{Data: emptiness.String("   "), CheckEmpty: true},
			expectedEmpty:   true,
			expectedMessage: MessageDataIsEmpty,
		},
		{
			name:            "non-empty string is not empty",
			request:         CheckRequest{Data: emptiness.String("a"), CheckEmpty: true},
			expectedEmpty:   false,
			expectedMessage: MessageCheckComplete,
		},
		{
			name:            "check disabled skips inspection",
			request:         CheckRequest{Data: emptiness.Absent(), CheckEmpty: false},
			expectedEmpty:   false,
			expectedMessage: MessageCheckComplete,
		},
		{
			name:            "check disabled with empty sequence",
			request:         CheckRequest{Data: emptiness.Sequence(), CheckEmpty: false},
			expectedEmpty:   false,
			expectedMessage: MessageCheckComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := process(&tt.request, time.Now())

			assert.NoError(t, err, "Expected processing to succeed")
			assert.True(t, resp.Success, "Expected successful response")
			assert.Equal(t, tt.expectedEmpty, resp.IsEmpty, "Expected correct emptiness verdict")
			assert.Equal(t, tt.expectedMessage, resp.Message, "Expected correct message")
			assert.GreaterOrEqual(t, resp.ProcessingTimeMs, 0.0, "Expected non-negative processing time")
		})
	}
}

func TestProcess_Timeout(t *testing.T) {
	req := CheckRequest{CheckEmpty: true, Timeout: 50}

	resp, err := process(&req, time.Now())

	assert.NoError(t, err, "Expected processing to succeed")
	assert.GreaterOrEqual(t, resp.ProcessingTimeMs, 50.0, "Expected elapsed time to cover the delay")
}

func TestProcess_ZeroTimeout(t *testing.T) {
	req := CheckRequest{CheckEmpty: true}

	resp, err := process(&req, time.Now())

	assert.NoError(t, err, "Expected processing to succeed")
	assert.GreaterOrEqual(t, resp.ProcessingTimeMs, 0.0, "Expected non-negative processing time")
	assert.Less(t, resp.ProcessingTimeMs, 50.0, "Expected no artificial delay")
}

func TestProcess_NegativeTimeout(t *testing.T) {
	// Negative timeouts pass through unvalidated and behave as no delay.
	req := CheckRequest{CheckEmpty: true, Timeout: -100}

	resp, err := process(&req, time.Now())

	assert.NoError(t, err, "Expected processing to succeed")
	assert.Less(t, resp.ProcessingTimeMs, 50.0, "Expected no artificial delay")
}

func TestNewCheckRequest_Defaults(t *testing.T) {
	req := NewCheckRequest()

	assert.True(t, req.CheckEmpty, "Expected check_empty to default to true")
	assert.Equal(t, int64(0), req.Timeout, "Expected timeout to default to 0")
	assert.Equal(t, emptiness.KindAbsent, req.Data.Kind(), "Expected data to default to absent")
}

func TestCheckRequest_FieldDefaulting(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		expectedCheckEmpty bool
		expectedTimeout    int64
	}{
		{
			name:               "empty object keeps defaults",
			body:               `{}`,
			expectedCheckEmpty: true,
			expectedTimeout:    0,
		},
		{
			name:               "explicit false sticks",
			body:               `{"check_empty": false}`,
			expectedCheckEmpty: false,
			expectedTimeout:    0,
		},
		{
			name:               "all fields set",
			body:               `{"data": "x", "check_empty": true, "timeout": 25}`,
			expectedCheckEmpty: true,
			expectedTimeout:    25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewCheckRequest()
			err := json.Unmarshal([]byte(tt.body), &req)

			assert.NoError(t, err, "Expected body to decode")
			assert.Equal(t, tt.expectedCheckEmpty, req.CheckEmpty, "Expected correct check_empty")
			assert.Equal(t, tt.expectedTimeout, req.Timeout, "Expected correct timeout")
		})
	}
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	RegisterRoutes(app)
	return app
}

func TestCheckEmptyHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedEmpty bool
	}{
		{
			name:          "null data",
			body:          `{"data": null}`,
			expectedEmpty: true,
		},
		{
			name:          "missing data field",
			body:          `{}`,
			expectedEmpty: true,
		},
		{
			name:          "empty array",
			body:          `{"data": []}`,
			expectedEmpty: true,
		},
		{
			name:          "array with zero",
			body:          `{"data": [0]}`,
			expectedEmpty: false,
		},
		{
			name:          "empty object",
			body:          `{"data": {}}`,
			expectedEmpty: true,
		},
		{
			name:          "number zero",
			body:          `{"data": 0}`,
			expectedEmpty: false,
		},
		{
			name:          "boolean false",
			body:          `{"data": false}`,
			expectedEmpty: false,
		},
		{
			name:          "check disabled on null data",
			body:          `{"data": null, "check_empty": false}`,
			expectedEmpty: false,
		},
	}

	app := newTestApp()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/api/check-empty", bytes.NewReader([]byte(tt.body)))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req, 2000)
			assert.NoError(t, err, "Expected request to complete")
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected 200 response")

			body, err := io.ReadAll(resp.Body)
			assert.NoError(t, err, "Expected body to be readable")

			var checkResp CheckResponse
			err = json.Unmarshal(body, &checkResp)
			assert.NoError(t, err, "Expected a CheckResponse body")
			assert.True(t, checkResp.Success, "Expected success")
			assert.Equal(t, tt.expectedEmpty, checkResp.IsEmpty, "Expected correct emptiness verdict")
		})
	}
}

func TestCheckEmptyHandler_TimeoutDelaysResponse(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/check-empty", bytes.NewReader([]byte(`{"data": "x", "timeout": 80}`)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, 5000)
	assert.NoError(t, err, "Expected request to complete")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected 200 response")

	body, _ := io.ReadAll(resp.Body)
	var checkResp CheckResponse
	assert.NoError(t, json.Unmarshal(body, &checkResp), "Expected a CheckResponse body")
	assert.GreaterOrEqual(t, checkResp.ProcessingTimeMs, 80.0, "Expected elapsed time to cover the delay")
}

func TestEmptyHandler(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/empty", nil)

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err, "Expected request to complete")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode, "Expected 204 response")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err, "Expected body to be readable")
	assert.Empty(t, body, "Expected empty body")
}
