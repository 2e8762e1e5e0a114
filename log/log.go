// Package log provides the module-scoped structured logger used across
// mini-chain. Each logger is tagged with a module name, so log lines can
// be filtered by subsystem without touching call sites.
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module names. Add one per package that wants its own logger tag.
const (
	Network      = "NETWORK"
	NodeModule   = "NODE"
	Proposer     = "PROPOSER"
	Miner        = "MINER"
	Verifier     = "VERIFIER"
	ChainManager = "CHAINMGR"
	Chain        = "CHAIN"
	MemPool      = "MEMPOOL"
	StagePool    = "STAGEPOOL"
	Client       = "CLIENT"
	CmdMineChain = "CMD"
)

var (
	base   *zap.Logger
	stdout = colorable.NewColorableStdout()
)

func init() {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "module",
		CallerKey:      "",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(stdout), zapcore.InfoLevel)
	base = zap.New(core)
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString(color.New(color.FgCyan).Sprint("DEBG"))
	case zapcore.InfoLevel:
		enc.AppendString(color.New(color.FgGreen).Sprint("INFO"))
	case zapcore.WarnLevel:
		enc.AppendString(color.New(color.FgYellow).Sprint("WARN"))
	case zapcore.ErrorLevel:
		enc.AppendString(color.New(color.FgRed).Sprint("EROR"))
	default:
		enc.AppendString(level.CapitalString())
	}
}

// Logger is the interface every mini-chain actor logs through.
type Logger interface {
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
}

type moduleLogger struct {
	z *zap.Logger
}

// NewModuleLogger returns a Logger tagged with the given module name.
func NewModuleLogger(module string) Logger {
	return &moduleLogger{z: base.Named(module)}
}

func (l *moduleLogger) Debug(msg string, ctx ...interface{}) { l.z.Debug(msg, fields(ctx)...) }
func (l *moduleLogger) Info(msg string, ctx ...interface{})  { l.z.Info(msg, fields(ctx)...) }
func (l *moduleLogger) Warn(msg string, ctx ...interface{})  { l.z.Warn(msg, fields(ctx)...) }

// Error additionally captures the call-site and attaches it as a field
// on error-level output.
func (l *moduleLogger) Error(msg string, ctx ...interface{}) {
	call := stack.Caller(1)
	f := append(fields(ctx), zap.String("caller", fmt.Sprintf("%+v", call)))
	l.z.Error(msg, f...)
}

// fields turns variadic "key", value, "key", value... pairs into zap
// fields. An odd-length ctx logs the dangling key with a nil value rather
// than panicking, since these are call sites, not wire payloads.
func fields(ctx []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(ctx)/2+1)
	for i := 0; i+1 < len(ctx); i += 2 {
		key, ok := ctx[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", ctx[i])
		}
		out = append(out, zap.Any(key, ctx[i+1]))
	}
	if len(ctx)%2 == 1 {
		out = append(out, zap.Any(fmt.Sprintf("%v", ctx[len(ctx)-1]), nil))
	}
	return out
}

// Fatal logs and exits the process; reserved for unrecoverable conditions
// (a closed channel, a poisoned lock, a hash primitive failure).
func Fatal(module, msg string, ctx ...interface{}) {
	NewModuleLogger(module).Error(msg, ctx...)
	os.Exit(1)
}
