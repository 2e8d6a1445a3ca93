// Copyright 2026 langchaingang Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

/*
Package provider 维护 provider 名称到 langchaingo 聊天模型构造函数的映射。

# 概述

内置表（[Builtin]）在包初始化时固定，列出 openai、azure_openai、bedrock、
vertex、gemini、anthropic、ollama 七个 provider，每项记录绑定包的导入路径、
构造出的 SDK 类型以及参数别名。

构造函数由 providers/<sdk> 绑定包在 init 中通过 [MustInstall] 安装，
用法与 database/sql 驱动一致：只链接需要的绑定包即可。

# 解析流程

[Registry.ChatModel] 依次执行：

  - 名称不在表中：返回 [ErrUnsupported]
  - 绑定包未链接：返回 [ErrNotInstalled]，错误信息给出需要导入的包路径
  - 按别名重命名参数（例如 bedrock 的 model → model_id），不修改调用方的 map
  - 调用构造函数，错误原样返回

# 参数

[Params] 是 map[string]any，绑定包使用 [Decode] 将其解码到带 mapstructure
标签的结构体；未知参数会被视为构造期校验错误。
*/
package provider
