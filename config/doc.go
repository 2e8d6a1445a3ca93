// Package config 提供 langchaingang 的配置管理功能。
//
// 配置来源依次为默认值、YAML 文件与 LANGCHAINGANG_ 前缀的环境变量。
// Models 段声明命名的 chat model（provider + params），
// 由 langchaingang.ChatModelsFromConfig 统一构造。
package config
