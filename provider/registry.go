package provider

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/langchaingang/internal/ctxkeys"
)

// Constructor builds a chat model from aliased params. Bindings return errors
// from decoding and from the SDK unchanged.
type Constructor func(ctx context.Context, params Params) (llms.Model, error)

const tracerName = "github.com/BaSui01/langchaingang/provider"

// Construction outcomes reported to an Observer.
const (
	ResultSuccess      = "success"
	ResultUnsupported  = "unsupported"
	ResultNotInstalled = "not_installed"
	ResultError        = "error"
)

// Observer is notified once per ChatModel call.
type Observer interface {
	ObserveChatModel(provider, result string, d time.Duration)
}

// Registry maps provider keys to descriptors and installed constructors.
// The descriptor table is fixed at construction; constructors are attached
// later by binding packages.
type Registry struct {
	infos    []Info
	index    map[string]int
	ctors    map[string]Constructor
	logger   *zap.Logger
	observer Observer
	mu       sync.RWMutex
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger.With(zap.String("component", "provider_registry"))
		}
	}
}

// WithObserver sets the construction observer.
func WithObserver(o Observer) RegistryOption {
	return func(r *Registry) {
		r.observer = o
	}
}

// NewRegistry creates a registry over infos. It panics on an empty or
// duplicate provider name.
func NewRegistry(infos []Info, opts ...RegistryOption) *Registry {
	r := &Registry{
		infos:  make([]Info, 0, len(infos)),
		index:  make(map[string]int, len(infos)),
		ctors:  make(map[string]Constructor, len(infos)),
		logger: zap.NewNop(),
	}
	for _, info := range infos {
		if info.Name == "" {
			panic("provider: empty provider name")
		}
		if _, dup := r.index[info.Name]; dup {
			panic(fmt.Sprintf("provider: duplicate provider %q", info.Name))
		}
		info.Aliases = maps.Clone(info.Aliases)
		r.index[info.Name] = len(r.infos)
		r.infos = append(r.infos, info)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetLogger replaces the logger. A nil logger disables logging.
func (r *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger.With(zap.String("component", "provider_registry"))
}

// SetObserver replaces the observer. nil disables observation.
func (r *Registry) SetObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = o
}

// List returns every registered provider key in table order, whether or not
// its binding is installed.
func (r *Registry) List() []string {
	names := make([]string, len(r.infos))
	for i, info := range r.infos {
		names[i] = info.Name
	}
	return names
}

// Lookup returns a copy of the descriptor for name. Mutating the returned
// Aliases does not affect the registry.
func (r *Registry) Lookup(name string) (Info, bool) {
	idx, ok := r.index[name]
	if !ok {
		return Info{}, false
	}
	info := r.infos[idx]
	info.Aliases = maps.Clone(info.Aliases)
	return info, true
}

// IsSupported reports whether name is registered and its binding installed.
func (r *Registry) IsSupported(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ctors[name]
	return ok
}

// Installed returns the keys whose bindings are installed, in table order.
func (r *Registry) Installed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for _, info := range r.infos {
		if _, ok := r.ctors[info.Name]; ok {
			names = append(names, info.Name)
		}
	}
	return names
}

// Install attaches ctor to a registered provider.
func (r *Registry) Install(name string, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("provider %q: nil constructor", name)
	}
	if _, ok := r.index[name]; !ok {
		return unsupportedError(name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.ctors[name]; dup {
		return fmt.Errorf("provider %q already installed", name)
	}
	r.ctors[name] = ctor
	return nil
}

// MustInstall is Install for use from init functions; it panics on error.
func (r *Registry) MustInstall(name string, ctor Constructor) {
	if err := r.Install(name, ctor); err != nil {
		panic(fmt.Sprintf("provider: %v", err))
	}
}

// ChatModel resolves name, renames params according to the provider's
// aliases and calls the installed constructor. Lookup failures return *Error;
// constructor errors are returned as is. Each call runs in a
// "provider.ChatModel" span on the global tracer provider.
func (r *Registry) ChatModel(ctx context.Context, name string, params Params) (llms.Model, error) {
	start := time.Now()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "provider.ChatModel",
		trace.WithAttributes(spanAttributes(ctx, name, params)...))
	defer span.End()

	r.mu.RLock()
	ctor := r.ctors[name]
	logger, observer := r.logger, r.observer
	r.mu.RUnlock()

	finish := func(result string, err error) {
		span.SetAttributes(attribute.String("llm.result", result))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if observer != nil {
			observer.ObserveChatModel(name, result, time.Since(start))
		}
	}

	info, ok := r.Lookup(name)
	if !ok {
		err := unsupportedError(name)
		finish(ResultUnsupported, err)
		return nil, err
	}
	if ctor == nil {
		err := notInstalledError(info)
		finish(ResultNotInstalled, err)
		return nil, err
	}

	args := ApplyAliases(params, info.Aliases)
	logger = logger.With(contextFields(ctx)...)
	logger.Debug("constructing chat model",
		zap.String("provider", name),
		zap.String("model_type", info.Model),
		zap.Strings("params", args.Keys()))

	m, err := ctor(ctx, args)
	if err != nil {
		finish(ResultError, err)
		logger.Debug("chat model construction failed",
			zap.String("provider", name),
			zap.Error(err))
		return nil, err
	}
	finish(ResultSuccess, nil)
	return m, nil
}

// spanAttributes 只记录 provider、模型名和 run_id，不记录其他参数值
func spanAttributes(ctx context.Context, name string, params Params) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("llm.provider", name)}
	if model, ok := params["model"].(string); ok && model != "" {
		attrs = append(attrs, attribute.String("llm.model", model))
	}
	if id, ok := ctxkeys.RunID(ctx); ok {
		attrs = append(attrs, attribute.String("run_id", id))
	}
	return attrs
}

// contextFields 提取 context 中的 run_id 与模型配置名
func contextFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id, ok := ctxkeys.RunID(ctx); ok {
		fields = append(fields, zap.String("run_id", id))
	}
	if p, ok := ctxkeys.Profile(ctx); ok {
		fields = append(fields, zap.String("profile", p))
	}
	return fields
}

// =============================================================================
// Default registry
// =============================================================================

var defaultRegistry = NewRegistry(Builtin())

// Default returns the process-wide registry over the built-in table.
// Binding packages install into it from init.
func Default() *Registry {
	return defaultRegistry
}

// MustInstall installs ctor into the default registry.
func MustInstall(name string, ctor Constructor) {
	defaultRegistry.MustInstall(name, ctor)
}
