// MockChatModel 是 llms.Model 的测试模拟实现。
//
// 支持固定响应、错误注入与调用记录。
package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

// MockChatModel 是聊天模型的模拟实现
type MockChatModel struct {
	mu sync.RWMutex

	response string
	err      error
	calls    []MockChatModelCall
}

// MockChatModelCall 记录单次 GenerateContent 调用
type MockChatModelCall struct {
	Messages []llms.MessageContent
	Options  llms.CallOptions
}

var _ llms.Model = (*MockChatModel)(nil)

// NewMockChatModel 创建新的 MockChatModel
func NewMockChatModel() *MockChatModel {
	return &MockChatModel{response: "Mock response"}
}

// WithResponse 设置固定响应内容
func (m *MockChatModel) WithResponse(response string) *MockChatModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = response
	return m
}

// WithError 设置返回错误
func (m *MockChatModel) WithError(err error) *MockChatModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// GenerateContent 实现 llms.Model
func (m *MockChatModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	var opts llms.CallOptions
	for _, opt := range options {
		opt(&opts)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockChatModelCall{Messages: messages, Options: opts})
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

// Call 实现 llms.Model
func (m *MockChatModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

// Calls 返回调用记录副本
func (m *MockChatModel) Calls() []MockChatModelCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MockChatModelCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// LastCall 返回最后一次调用
func (m *MockChatModel) LastCall() (MockChatModelCall, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.calls) == 0 {
		return MockChatModelCall{}, errors.New("no calls recorded")
	}
	return m.calls[len(m.calls)-1], nil
}
