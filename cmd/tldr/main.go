// =============================================================================
// tldr 主入口
// =============================================================================
// 用法:
//
//	tldr README.md
//	tldr --provider anthropic --model claude-3-5-haiku-latest https://example.com/post
//	tldr --env-file .env --config tldr.yaml notes.txt
// =============================================================================

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/langchaingang"
	"github.com/BaSui01/langchaingang/config"
	"github.com/BaSui01/langchaingang/internal/ctxkeys"
	"github.com/BaSui01/langchaingang/internal/metrics"
	"github.com/BaSui01/langchaingang/internal/telemetry"
	"github.com/BaSui01/langchaingang/internal/tlsutil"
	"github.com/BaSui01/langchaingang/provider"

	_ "github.com/BaSui01/langchaingang/providers/all"
)

const (
	defaultProvider = provider.OpenAI
	defaultModel    = "gpt-4o-mini"
)

// errNoProviders 表示没有任何 provider binding 被链接
var errNoProviders = errors.New("no LLM providers are available")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "tldr: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// 应用
// =============================================================================

type app struct {
	registry    *provider.Registry
	httpClient  *http.Client
	countTokens func(string) (int, error)
	stdout      io.Writer
	stderr      io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		registry:    langchaingang.DefaultRegistry(),
		httpClient:  tlsutil.SecureHTTPClient(30*time.Second, 0),
		countTokens: countTokens,
		stdout:      stdout,
		stderr:      stderr,
	}
}

type options struct {
	envFile     string
	configPath  string
	provider    string
	model       string
	logLevel    string
	metricsFile string
	source      string

	// 命令行显式设置过的 flag
	explicit map[string]bool
}

func (a *app) parseFlags(args []string) (*options, error) {
	opts := &options{explicit: make(map[string]bool)}

	fs := flag.NewFlagSet("tldr", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&opts.envFile, "env-file", "", "Load environment variables from this file")
	fs.StringVar(&opts.configPath, "config", "", "Path to config file (YAML)")
	fs.StringVar(&opts.provider, "provider", defaultProvider,
		"LLM provider, one of: "+strings.Join(langchaingang.ProviderList(), ", "))
	fs.StringVar(&opts.model, "model", defaultModel, "Model name passed to the provider")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: tldr [options] <filename_or_url>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one filename or URL, got %d", fs.NArg())
	}
	opts.source = fs.Arg(0)
	fs.Visit(func(f *flag.Flag) { opts.explicit[f.Name] = true })
	return opts, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	opts, err := a.parseFlags(args)
	if err != nil {
		return err
	}

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", opts.envFile, err)
		}
	}

	loader := config.NewLoader()
	if opts.configPath != "" {
		loader = loader.WithConfigPath(opts.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.metricsFile != "" {
		cfg.Metrics.TextfilePath = opts.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	runID := uuid.NewString()
	ctx = ctxkeys.WithRunID(ctx, runID)
	logger := initLogger(cfg.Log).With(zap.String("run_id", runID))
	defer logger.Sync()

	if len(a.registry.Installed()) == 0 {
		return errNoProviders
	}

	tel, err := telemetry.Init(ctx, cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	collector := metrics.NewCollector(cfg.Metrics.Namespace, logger)
	a.registry.SetLogger(logger)
	a.registry.SetObserver(collector)
	defer a.registry.SetObserver(nil)

	providerName, modelName := opts.provider, opts.model
	var model llms.Model
	if cfg.DefaultModel != "" && !opts.explicit["provider"] && !opts.explicit["model"] {
		models, def, err := langchaingang.ChatModelsFromRegistry(ctx, a.registry, cfg, logger)
		if err != nil {
			return err
		}
		model = models[def]
		providerName = cfg.Models[def].Provider
		modelName = profileModel(cfg.Models[def], def)
	} else {
		if !slices.Contains(a.registry.List(), providerName) {
			return fmt.Errorf("invalid provider %q: choose from %s",
				providerName, strings.Join(a.registry.List(), ", "))
		}
		model, err = a.registry.ChatModel(ctx, providerName, provider.Params{
			"model":       modelName,
			"temperature": 0,
		})
		if err != nil {
			return err
		}
	}

	logger.Info("summarizing document",
		zap.String("source", opts.source),
		zap.String("provider", providerName),
		zap.String("model", modelName))

	document, err := loadDocument(ctx, a.httpClient, opts.source)
	if err != nil {
		return err
	}

	tokens, err := a.countTokens(document)
	if err != nil {
		logger.Warn("token count unavailable", zap.Error(err))
	} else {
		logger.Debug("document loaded",
			zap.Int("bytes", len(document)),
			zap.Int("tokens", tokens))
	}

	start := time.Now()
	summary, err := summarize(ctx, model, document, target{Provider: providerName, Model: modelName})
	status := "success"
	if err != nil {
		status = "error"
	}
	collector.RecordLLMRequest(providerName, modelName, status, time.Since(start), tokens)
	if cfg.Metrics.TextfilePath != "" {
		if werr := collector.WriteTextfile(cfg.Metrics.TextfilePath); werr != nil {
			logger.Warn("failed to write metrics", zap.Error(werr))
		}
	}
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	fmt.Fprintln(a.stdout, summary)
	return nil
}

// profileModel 返回配置中的模型名；未设置时退回配置名
func profileModel(mc config.ModelConfig, profile string) string {
	for _, key := range []string{"model", "model_id", "model_name"} {
		if m, ok := mc.Params[key].(string); ok && m != "" {
			return m
		}
	}
	return profile
}

// =============================================================================
// 日志初始化
// =============================================================================

func initLogger(cfg config.LogConfig) *zap.Logger {
	// 解析日志级别
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	// 配置编码器
	var encoderConfig zapcore.EncoderConfig
	if cfg.Format == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	encoding := "json"
	if cfg.Format == "console" {
		encoding = "console"
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	var zapOpts []zap.Option
	if cfg.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	logger, err := zapConfig.Build(zapOpts...)
	if err != nil {
		// 回退到基本 logger
		logger, _ = zap.NewProduction()
		logger.Warn("failed to build logger from config, using default", zap.Error(err))
	}
	return logger
}
