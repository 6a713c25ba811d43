package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/utils"
)

func newTestGenerator(url string) *RESTGenerator {
	return NewRESTGenerator(&config.Config{
		GeminiEndpoint:     url + "/",
		GeminiAPIKey:       "test-key",
		GeminiModel:        "gemini-test",
		HTTPTimeoutSeconds: 5,
	})
}

func TestRESTGenerateSuccess(t *testing.T) {
	var got restRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/models/gemini-test:generateContent" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"atsScore\":"},{"text":"{\"score\":80}}"}]}}]}`))
	}))
	defer srv.Close()

	g := newTestGenerator(srv.URL)
	text, err := g.Generate(context.Background(), Request{
		Prompt:           "analyze this",
		GenerationConfig: GenerationConfig{Temperature: 0.3, MaxOutputTokens: 1024},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != `{"atsScore":{"score":80}}` {
		t.Errorf("Generate() = %q", text)
	}
	if len(got.Contents) != 1 || got.Contents[0].Parts[0].Text != "analyze this" {
		t.Errorf("request contents = %+v", got.Contents)
	}
	if got.GenerationConfig.MaxOutputTokens != 1024 {
		t.Errorf("generationConfig = %+v", got.GenerationConfig)
	}
	if g.Model() != "gemini-test" {
		t.Errorf("Model() = %q", g.Model())
	}
}

func TestRESTGenerateSurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	_, err := newTestGenerator(srv.URL).Generate(context.Background(), Request{Prompt: "x"})

	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Generate() error = %v, want *utils.AppError", err)
	}
	if appErr.Kind != utils.KindUpstreamServiceError {
		t.Errorf("Kind = %s", appErr.Kind)
	}
	if appErr.UpstreamStatus != http.StatusTooManyRequests {
		t.Errorf("UpstreamStatus = %d", appErr.UpstreamStatus)
	}
	if appErr.Detail != `{"error":{"message":"quota exceeded"}}` {
		t.Errorf("Detail = %q", appErr.Detail)
	}
}

func TestRESTGenerateEmpty(t *testing.T) {
	bodies := []string{
		`{"candidates":[]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		_, err := newTestGenerator(srv.URL).Generate(context.Background(), Request{Prompt: "x"})
		if !utils.IsKind(err, utils.KindEmptyModelResponse) {
			t.Errorf("body %s: error = %v, want EmptyModelResponse", body, err)
		}
		srv.Close()
	}
}

func TestRESTGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestGenerator(url).Generate(context.Background(), Request{Prompt: "x"})
	if !utils.IsKind(err, utils.KindUpstreamServiceError) {
		t.Errorf("error = %v, want UpstreamServiceError", err)
	}
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := map[codes.Code]int{
		codes.InvalidArgument:   http.StatusBadRequest,
		codes.PermissionDenied:  http.StatusForbidden,
		codes.ResourceExhausted: http.StatusTooManyRequests,
		codes.Unavailable:       http.StatusServiceUnavailable,
		codes.DeadlineExceeded:  http.StatusGatewayTimeout,
		codes.Internal:          http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := httpStatusFromCode(code); got != want {
			t.Errorf("httpStatusFromCode(%s) = %d, want %d", code, got, want)
		}
	}
}
