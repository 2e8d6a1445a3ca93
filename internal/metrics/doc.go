// 版权所有 2026 langchaingang Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 metrics 提供基于 Prometheus 的指标采集能力，覆盖 chat model 构造
与 LLM 调用两个维度。

# 核心类型

  - Collector：指标收集器，持有独立的 prometheus.Registry，
    实现 provider.Observer 接口，可直接挂到 provider.Registry 上。

# 主要能力

  - 构造指标：构造次数（按 provider/result 分组）与构造耗时。
  - LLM 指标：请求总数、请求耗时、prompt Token 用量，按 provider/model 分组。
  - 一次性命令行运行结束后通过 WriteTextfile 输出文本格式指标。
*/
package metrics
