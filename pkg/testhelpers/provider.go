package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Responder produces the fake provider's answer for one request.
type Responder func(req openai.ChatCompletionRequest) (status int, body any)

// FakeProvider is an httptest server speaking the chat-completions API.
type FakeProvider struct {
	server    *httptest.Server
	responder Responder

	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
	tokens   []string
	paths    []string
}

// NewFakeProvider starts a fake provider that is closed with the test.
func NewFakeProvider(t testing.TB, responder Responder) *FakeProvider {
	t.Helper()
	f := &FakeProvider{responder: responder}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeProvider) handle(w http.ResponseWriter, r *http.Request) {
	var req openai.ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.tokens = append(f.tokens, BearerToken(r))
	f.paths = append(f.paths, r.URL.Path)
	f.mu.Unlock()

	status, body := f.responder(req)
	if raw, ok := body.(string); ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(raw))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// URL is the base URL to configure as PROVIDER_BASE_URL.
func (f *FakeProvider) URL() string {
	return f.server.URL + "/v1"
}

// Calls returns how many requests were received.
func (f *FakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// LastRequest returns the most recent decoded request.
func (f *FakeProvider) LastRequest() openai.ChatCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return openai.ChatCompletionRequest{}
	}
	return f.requests[len(f.requests)-1]
}

// LastToken returns the bearer token of the most recent request.
func (f *FakeProvider) LastToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tokens) == 0 {
		return ""
	}
	return f.tokens[len(f.tokens)-1]
}

// LastPath returns the URL path of the most recent request.
func (f *FakeProvider) LastPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.paths) == 0 {
		return ""
	}
	return f.paths[len(f.paths)-1]
}

// Completion builds a one-choice response.
func Completion(content string, finishReason openai.FinishReason, completionTokens int) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:     "chatcmpl-test",
		Object: "chat.completion",
		Choices: []openai.ChatCompletionChoice{{
			Index:        0,
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
			FinishReason: finishReason,
		}},
		Usage: openai.Usage{
			PromptTokens:     42,
			CompletionTokens: completionTokens,
			TotalTokens:      42 + completionTokens,
		},
	}
}

// ReplyWith answers every request with content and finish_reason "stop".
func ReplyWith(content string) Responder {
	return func(openai.ChatCompletionRequest) (int, any) {
		return http.StatusOK, Completion(content, openai.FinishReasonStop, 12)
	}
}

// FailWith answers every request with status and a raw body.
func FailWith(status int, body string) Responder {
	return func(openai.ChatCompletionRequest) (int, any) {
		return status, body
	}
}

// Delayed waits d before answering with next, to simulate a slow provider.
func Delayed(d time.Duration, next Responder) Responder {
	return func(req openai.ChatCompletionRequest) (int, any) {
		time.Sleep(d)
		return next(req)
	}
}
