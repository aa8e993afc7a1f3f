package testutil

import (
	"context"
	"sync"

	"memomaker/internal/app/api"
	"memomaker/internal/app/model"
)

// MockInferenceClient is a configurable in-memory api.InferenceClient for
// tests. It records every call so tests can assert which remote requests a
// submission produced.
type MockInferenceClient struct {
	mu sync.Mutex

	name         string
	transcript   string
	memo         string
	uploadHandle string
	usage        model.UsageStats

	generateErr error
	uploadErr   error
	textErr     error

	bytesCalls  int
	uploadCalls int
	handleCalls int
	textCalls   int

	lastBytesPrompt string
	lastBytesLen    int
	lastHandle      string
	lastHandleMime  string
	lastTextPrompt  string
	lastText        string

	callOrder []string
}

// NewMockInferenceClient returns a mock with sensible defaults.
func NewMockInferenceClient() *MockInferenceClient {
	return &MockInferenceClient{
		name:         "mock",
		transcript:   "mock transcript",
		memo:         "mock memo",
		uploadHandle: "files/mock-handle",
	}
}

func (m *MockInferenceClient) WithName(name string) *MockInferenceClient {
	m.name = name
	return m
}

func (m *MockInferenceClient) WithTranscript(text string) *MockInferenceClient {
	m.transcript = text
	return m
}

func (m *MockInferenceClient) WithMemo(text string) *MockInferenceClient {
	m.memo = text
	return m
}

func (m *MockInferenceClient) WithUploadHandle(handle string) *MockInferenceClient {
	m.uploadHandle = handle
	return m
}

func (m *MockInferenceClient) WithUsage(usage model.UsageStats) *MockInferenceClient {
	m.usage = usage
	return m
}

func (m *MockInferenceClient) WithGenerateError(err error) *MockInferenceClient {
	m.generateErr = err
	return m
}

func (m *MockInferenceClient) WithUploadError(err error) *MockInferenceClient {
	m.uploadErr = err
	return m
}

func (m *MockInferenceClient) WithTextError(err error) *MockInferenceClient {
	m.textErr = err
	return m
}

func (m *MockInferenceClient) Name() string {
	return m.name
}

func (m *MockInferenceClient) GenerateFromBytes(_ context.Context, prompt string, data []byte, _ string) (*api.GenerateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bytesCalls++
	m.lastBytesPrompt = prompt
	m.lastBytesLen = len(data)
	m.callOrder = append(m.callOrder, "generate_bytes")
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return &api.GenerateResult{Text: m.transcript, Usage: m.usage}, nil
}

func (m *MockInferenceClient) UploadFile(_ context.Context, path string, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadCalls++
	m.callOrder = append(m.callOrder, "upload")
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	return m.uploadHandle, nil
}

func (m *MockInferenceClient) GenerateFromHandle(_ context.Context, prompt string, handle string, mimeType string) (*api.GenerateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handleCalls++
	m.lastHandle = handle
	m.lastHandleMime = mimeType
	m.callOrder = append(m.callOrder, "generate_handle")
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return &api.GenerateResult{Text: m.transcript, Usage: m.usage}, nil
}

func (m *MockInferenceClient) GenerateFromText(_ context.Context, prompt string, text string) (*api.GenerateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textCalls++
	m.lastTextPrompt = prompt
	m.lastText = text
	m.callOrder = append(m.callOrder, "generate_text")
	if m.textErr != nil {
		return nil, m.textErr
	}
	return &api.GenerateResult{Text: m.memo, Usage: m.usage}, nil
}

func (m *MockInferenceClient) GenerateFromBytesCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bytesCalls
}

func (m *MockInferenceClient) UploadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploadCalls
}

func (m *MockInferenceClient) GenerateFromHandleCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handleCalls
}

func (m *MockInferenceClient) GenerateFromTextCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.textCalls
}

func (m *MockInferenceClient) LastHandle() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHandle
}

func (m *MockInferenceClient) LastBytesLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastBytesLen
}

func (m *MockInferenceClient) LastTextPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTextPrompt
}

func (m *MockInferenceClient) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText
}

// CallOrder returns the sequence of remote calls, e.g.
// ["upload", "generate_handle", "generate_text"].
func (m *MockInferenceClient) CallOrder() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	order := make([]string, len(m.callOrder))
	copy(order, m.callOrder)
	return order
}
