// Copyright 2026 langchaingang Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

/*
Package testutil 提供 langchaingang 测试的共享工具和辅助函数。

# 核心能力

  - 上下文辅助: TestContext / TestContextWithTimeout / CancelledContext，
    自动注册 Cleanup 防止泄漏
  - 文件与环境: WriteTempFile / ClearEnv

# 子包

  - testutil/mocks: MockChatModel（llms.Model）与 MockConstructor
    （provider.Constructor），均支持 Builder 模式与错误注入

# 使用示例

	reg := provider.NewRegistry(provider.Builtin())
	ctor := mocks.NewMockConstructor()
	reg.MustInstall("bedrock", ctor.Construct)
	_, _ = reg.ChatModel(testutil.TestContext(t), "bedrock", provider.Params{"model": "x"})
	// ctor.LastParams() == provider.Params{"model_id": "x"}
*/
package testutil
