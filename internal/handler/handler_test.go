package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"lbseries/internal/handler"
	"lbseries/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newErrorHandler() *handler.ErrorHandler {
	return handler.NewErrorHandler(logger.Discard())
}

func postJSON(t *testing.T, c *gin.Context, path string, body interface{}) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	c.Request.Header.Set("Content-Type", "application/json")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
