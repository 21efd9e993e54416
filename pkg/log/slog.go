package log

import (
	"context"
	"log/slog"
	"sync"
)

// SlogLogger adapts *slog.Logger to Logger.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l. A nil l means slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, fields...) }
func (s *SlogLogger) Info(msg string, fields ...any)  { s.l.Info(msg, fields...) }
func (s *SlogLogger) Warn(msg string, fields ...any)  { s.l.Warn(msg, fields...) }

// Error logs at error level. A leading error value is attached as ErrAttr so
// that ErrFmtHandler can add its stack trace.
func (s *SlogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttr(err)}, fields[1:]...)
		}
	}
	s.l.Error(msg, fields...)
}

func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{l: s.l.With(fields...)}
}

func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.l.Enabled(ctx, slog.Level(level))
}

// SlogProvider hands out SlogLoggers sharing one handler and one adjustable level.
type SlogProvider struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

// NewSlogProvider builds a provider over l's handler. The provider level
// starts at LevelDebug so that l's own handler decides until SetLevel is called.
func NewSlogProvider(l *slog.Logger) *SlogProvider {
	if l == nil {
		l = slog.Default()
	}
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelDebug)
	return &SlogProvider{
		level:  lv,
		logger: slog.New(&levelHandler{level: lv, handler: l.Handler()}),
	}
}

func (p *SlogProvider) GetLogger() Logger {
	return NewSlogLogger(p.logger)
}

func (p *SlogProvider) GetLoggerWithName(name string) Logger {
	return NewSlogLogger(p.logger.With(ComponentKey, name))
}

func (p *SlogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

// levelHandler filters records below a LevelVar before delegating.
type levelHandler struct {
	level   *slog.LevelVar
	handler slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.level.Level() && h.handler.Enabled(ctx, l)
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithGroup(name)}
}

// defaultProvider logs through whatever slog.Default() is at the time a
// logger is requested, so slog.SetDefault takes effect without SetProvider.
type defaultProvider struct {
	level *slog.LevelVar
}

func newDefaultProvider() *defaultProvider {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelDebug)
	return &defaultProvider{level: lv}
}

func (p *defaultProvider) logger() *slog.Logger {
	return slog.New(&levelHandler{level: p.level, handler: slog.Default().Handler()})
}

func (p *defaultProvider) GetLogger() Logger {
	return NewSlogLogger(p.logger())
}

func (p *defaultProvider) GetLoggerWithName(name string) Logger {
	return NewSlogLogger(p.logger().With(ComponentKey, name))
}

func (p *defaultProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = newDefaultProvider()
)

// SetProvider replaces the package-wide provider. Estimators created
// afterwards log through it. A nil provider is ignored.
func SetProvider(p LoggerProvider) {
	if p == nil {
		return
	}
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// GetProvider returns the package-wide provider.
func GetProvider() LoggerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider
}

// GetLogger returns the default logger of the package-wide provider.
func GetLogger() Logger {
	return GetProvider().GetLogger()
}

// GetLoggerWithName returns a component-tagged logger of the package-wide provider.
func GetLoggerWithName(name string) Logger {
	return GetProvider().GetLoggerWithName(name)
}
