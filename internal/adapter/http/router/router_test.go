package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ressKim-io/barangay-ai/api-service/internal/adapter/client"
	"github.com/ressKim-io/barangay-ai/api-service/internal/infrastructure/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGemini answers every generateContent call with reply, or with status when non-zero
func fakeGemini(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != 0 {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(reply))
			return
		}
		body, err := json.Marshal(map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]interface{}{{"text": reply}},
				},
				"finishReason": "STOP",
			}},
		})
		require.NoError(t, err)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func setupRouter(t *testing.T, baseURL string, timeout time.Duration) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	gemini, err := client.NewGeminiClient(context.Background(), client.GeminiConfig{
		Model:         "gemini-3-flash-preview",
		ThinkingLevel: "low",
		Timeout:       timeout,
		BaseURL:       baseURL,
		APIKey:        "test-key",
	})
	require.NoError(t, err)

	m := metrics.New()
	return Setup(Options{
		Classifier:       client.NewGeminiClassifier(gemini),
		Metrics:          m,
		Logger:           zap.NewNop(),
		ValidateTaxonomy: true,
	}), m
}

func classify(router *gin.Engine, text string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"text": text})
	req, _ := http.NewRequest("POST", "/api/classify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Classify(t *testing.T) {
	t.Run("returns provider classification exactly", func(t *testing.T) {
		server := fakeGemini(t, 0, `{"incident_type": "Fire & Disaster", "urgency_level": "Critical"}`)
		router, _ := setupRouter(t, server.URL, 0)

		w := classify(router, "There's a fire in my neighbor's house!")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"incident_type": "Fire & Disaster", "urgency_level": "Critical"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("provider error returns error body with 200", func(t *testing.T) {
		server := fakeGemini(t, http.StatusForbidden, `{"error":{"code":403,"message":"Permission denied","status":"PERMISSION_DENIED"}}`)
		router, _ := setupRouter(t, server.URL, 0)

		w := classify(router, "someone stole my bike")

		assert.Equal(t, http.StatusOK, w.Code)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Len(t, payload, 1)
		assert.Contains(t, payload["error"], "Permission denied")
	})

	t.Run("provider timeout returns error body with 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		t.Cleanup(server.Close)
		router, _ := setupRouter(t, server.URL, 50*time.Millisecond)

		w := classify(router, "my lolo fainted")

		assert.Equal(t, http.StatusOK, w.Code)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.NotEmpty(t, payload["error"])
	})

	t.Run("malformed provider JSON returns error body", func(t *testing.T) {
		server := fakeGemini(t, 0, `not json at all`)
		router, _ := setupRouter(t, server.URL, 0)

		w := classify(router, "noise")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})
}

func TestRouter_Home(t *testing.T) {
	router, _ := setupRouter(t, "http://127.0.0.1:1", 0)

	req, _ := http.NewRequest("GET", "/", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Barangay AI API is Live")
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := setupRouter(t, "http://127.0.0.1:1", 0)

	req, _ := http.NewRequest("OPTIONS", "/api/classify", http.NoBody)
	req.Header.Set("Origin", "https://workmate.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://workmate.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "content-type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestRouter_Metrics(t *testing.T) {
	server := fakeGemini(t, 0, `{"incident_type": "VAWC", "urgency_level": "High"}`)
	router, _ := setupRouter(t, server.URL, 0)

	classify(router, "my husband hit me")

	req, _ := http.NewRequest("GET", "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `barangay_classifications_total{outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), `barangay_classified_incidents_total{incident_type="VAWC",urgency_level="High"} 1`)
	assert.Contains(t, w.Body.String(), `barangay_http_requests_total{method="POST",path="/api/classify",status="200"} 1`)
}

func TestRouter_HealthAndDocs(t *testing.T) {
	router, _ := setupRouter(t, "http://127.0.0.1:1", 0)

	for _, path := range []string{"/health", "/ready", "/docs", "/openapi.json"} {
		req, _ := http.NewRequest("GET", path, http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
