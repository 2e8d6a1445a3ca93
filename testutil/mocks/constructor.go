// MockConstructor 记录 provider.Constructor 收到的参数。
package mocks

import (
	"context"
	"sync"

	"github.com/BaSui01/langchaingang/provider"
	"github.com/tmc/langchaingo/llms"
)

// MockConstructor 是 provider 构造函数的模拟实现
type MockConstructor struct {
	mu sync.RWMutex

	model llms.Model
	err   error
	calls []provider.Params
}

// NewMockConstructor 创建返回 MockChatModel 的构造函数模拟
func NewMockConstructor() *MockConstructor {
	return &MockConstructor{model: NewMockChatModel()}
}

// WithModel 设置构造出的模型
func (c *MockConstructor) WithModel(m llms.Model) *MockConstructor {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = m
	return c
}

// WithError 设置构造错误
func (c *MockConstructor) WithError(err error) *MockConstructor {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
	return c
}

// Construct 满足 provider.Constructor 签名
func (c *MockConstructor) Construct(_ context.Context, params provider.Params) (llms.Model, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, params)
	if c.err != nil {
		return nil, c.err
	}
	return c.model, nil
}

// CallCount 返回调用次数
func (c *MockConstructor) CallCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.calls)
}

// LastParams 返回最后一次调用收到的参数，未调用时为 nil
func (c *MockConstructor) LastParams() provider.Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.calls) == 0 {
		return nil
	}
	return c.calls[len(c.calls)-1]
}
