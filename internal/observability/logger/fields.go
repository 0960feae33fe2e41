package logger

import (
	"time"

	"go.uber.org/zap"

	"github.com/dropDatabas3/usergate/internal/util"
)

// ─── HTTP ───

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }

// ─── Upstream ───

// Resource identifica el grupo upstream (auth | database).
func Resource(v string) zap.Field { return zap.String("resource", v) }

// URL del request upstream. Nunca incluye la API key (va en headers).
func URL(v string) zap.Field { return zap.String("url", v) }

// Step identifica el paso del saga de alta (validate | identity | record).
func Step(v string) zap.Field { return zap.String("step", v) }

func Elapsed(v time.Duration) zap.Field { return zap.Duration("elapsed", v) }

// ─── Negocio ───

func UserID(v string) zap.Field { return zap.String("user_id", v) }

// Email se loguea enmascarado (n…@m….io).
func Email(v string) zap.Field { return zap.String("email", util.MaskEmail(v)) }

// ─── Sistema ───

func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }
func Layer(v string) zap.Field     { return zap.String("layer", v) }
func Err(err error) zap.Field      { return zap.Error(err) }

func String(key, v string) zap.Field  { return zap.String(key, v) }
func Int(key string, v int) zap.Field { return zap.Int(key, v) }
func Any(key string, v any) zap.Field { return zap.Any(key, v) }
