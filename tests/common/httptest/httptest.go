//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// executes an HTTP request against router with an optional JSON body
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeNDJSON splits a newline-delimited JSON body into raw objects.
func DecodeNDJSON(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line), "Failed to decode NDJSON line: %s", w.Body.String())
		lines = append(lines, line)
	}
	return lines
}
