package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "brandpulse-srv/pkg/http"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
)

func newTestGemini(baseURL string) *geminiImpl {
	g := &geminiImpl{
		l:      log.NewNop(),
		config: llm.Config{APIKey: "key-1", Model: "gemini-test", BaseURL: baseURL},
	}
	g.httpClient = pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   time.Second,
		Retries:   3,
		RetryWait: time.Millisecond,
		OnRetry:   g.reportAttempt,
		Wait:      func(context.Context, time.Duration) error { return nil },
	})
	return g
}

func TestComplete_ConcatenatesCandidateParts(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.RawQuery)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(Response{
			Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: `{"a":`}, {Text: `1}`}}}}},
		})
	}))
	defer srv.Close()

	out, err := newTestGemini(srv.URL).Complete(context.Background(), "be terse", "analyze")

	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "be terse", got.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "analyze", got.Contents[0].Parts[0].Text)
}

func TestComplete_ForbiddenFailsFast(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	_, err := newTestGemini(srv.URL).Complete(context.Background(), "", "analyze")

	var le *llm.LLMError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, http.StatusForbidden, le.Status)
	assert.Equal(t, "API key not valid", le.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestComplete_TransportErrorOmitsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	g := newTestGemini(baseURL)
	g.config.APIKey = "SECRET-KEY-123"

	_, err := g.Complete(context.Background(), "", "analyze")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
}
