// Package tlsutil 为出站 HTTP 客户端（例如 tldr 下载文档）提供安全加固的 TLS 配置：
// TLS 1.2+，仅 AEAD 密码套件，限制重定向次数。
package tlsutil
