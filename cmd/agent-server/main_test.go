// cmd/agent-server/main_test.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"finance-agent/internal/common/logger"
	"finance-agent/internal/common/observability"
	"finance-agent/internal/models"
)

type stubProcessor struct {
	response string
	prompt   string
}

func (s *stubProcessor) ProcessUserInput(ctx context.Context, input string) string {
	s.prompt = input
	return s.response
}

func postQuery(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, models.QueryResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler(recorder, req)

	var response models.QueryResponse
	if recorder.Code == http.StatusOK {
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	}
	return recorder, response
}

func TestQueryHandler_Success(t *testing.T) {
	processor := &stubProcessor{response: "START: hi\n\nOUTPUT: hello"}
	handler := newQueryHandler(processor, true, &observability.Observability{}, logger.NewTestLogger(t))

	recorder, response := postQuery(t, handler, `{"prompt": "hi"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "hi", processor.prompt)
	assert.Equal(t, "START: hi\n\nOUTPUT: hello", response.Response)
}

func TestQueryHandler_RecordsTelemetryWithLiveMeter(t *testing.T) {
	obs := observability.New("agent-server-test")
	defer obs.Shutdown()

	processor := &stubProcessor{response: "OUTPUT: hello"}
	handler := newQueryHandler(processor, true, obs, logger.NewTestLogger(t))

	recorder, response := postQuery(t, handler, `{"prompt": "hi"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OUTPUT: hello", response.Response)
}

func TestQueryHandler_MethodNotAllowed(t *testing.T) {
	handler := newQueryHandler(&stubProcessor{}, true, &observability.Observability{}, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/query", nil)
	recorder := httptest.NewRecorder()
	handler(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestQueryHandler_MalformedJSONGetsFriendly200(t *testing.T) {
	handler := newQueryHandler(&stubProcessor{}, true, &observability.Observability{}, logger.NewTestLogger(t))

	recorder, response := postQuery(t, handler, `{not json`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Sorry, there was a problem understanding your request. Please try again.", response.Response)
}

func TestQueryHandler_MissingPrompt(t *testing.T) {
	handler := newQueryHandler(&stubProcessor{}, true, &observability.Observability{}, logger.NewTestLogger(t))

	for _, body := range []string{`{}`, `{"prompt": ""}`} {
		recorder, response := postQuery(t, handler, body)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Prompt is required. Please enter your question.", response.Response)
	}
}

func TestQueryHandler_MissingModelKeyUsesCannedResponder(t *testing.T) {
	processor := &stubProcessor{response: "should not be used"}
	handler := newQueryHandler(processor, false, &observability.Observability{}, logger.NewTestLogger(t))

	_, response := postQuery(t, handler, `{"prompt": "tell me about bitcoin"}`)

	assert.Empty(t, processor.prompt)
	assert.Contains(t, response.Response, "Bitcoin is currently trading around $60,000-$70,000.")
}

func TestQueryHandler_EmptyPipelineResponseFallsBack(t *testing.T) {
	processor := &stubProcessor{response: "   "}
	handler := newQueryHandler(processor, true, &observability.Observability{}, logger.NewTestLogger(t))

	_, response := postQuery(t, handler, `{"prompt": "hello there"}`)

	assert.Contains(t, response.Response, "I'm currently experiencing some connectivity issues")
}
