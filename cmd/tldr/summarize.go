package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BaSui01/langchaingang/internal/ctxkeys"
)

const tracerName = "github.com/BaSui01/langchaingang/cmd/tldr"

const summaryTemplate = "Please summarize this document in a single sentence:\n\n{{.document}}"

var summaryPrompt = prompts.NewPromptTemplate(summaryTemplate, []string{"document"})

// target 标识一次 LLM 请求，用于 span 属性与指标标签
type target struct {
	Provider string
	Model    string
}

// summarize 让模型把 document 总结成一句话
func summarize(ctx context.Context, model llms.Model, document string, t target) (string, error) {
	attrs := []attribute.KeyValue{
		attribute.String("llm.provider", t.Provider),
		attribute.String("llm.model", t.Model),
	}
	if id, ok := ctxkeys.RunID(ctx); ok {
		attrs = append(attrs, attribute.String("run_id", id))
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "tldr.summarize", trace.WithAttributes(attrs...))
	defer span.End()

	prompt, err := summaryPrompt.Format(map[string]any{"document": document})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "format prompt")
		return "", fmt.Errorf("format prompt: %w", err)
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, model, prompt, llms.WithTemperature(0))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// countTokens 用 cl100k_base 统计 token 数。首次调用可能需要下载编码表。
func countTokens(text string) (int, error) {
	enc, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	if err != nil {
		return 0, fmt.Errorf("load tokenizer: %w", err)
	}
	return len(enc.Encode(text, nil, nil)), nil
}
