// Copyright (c) langchaingang Authors.
// Licensed under the MIT License.

/*
Package main 提供 tldr 命令：用任意已链接的 LLM provider 把一篇文档总结成一句话。

# 概述

tldr 读取本地文件或 http(s) URL，通过 langchaingang.GetChatModel 按
--provider 构造聊天模型，再用固定 prompt 生成单句摘要并输出到 stdout。
日志（zap）写到 stderr，每次运行带一个 run_id。

# 主要能力

  - --env-file：用 godotenv 预先加载 API key 等环境变量
  - --config：YAML 配置；设置了 default_model 且未显式指定
    --provider/--model 时，使用该模型配置
  - 文档 token 数统计（tiktoken cl100k_base），仅用于日志
  - --metrics-file：运行结束后写 Prometheus textfile
*/
package main
