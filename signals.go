package cow

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for container events.
var (
	SignalPromote = capitan.NewSignal("cow.promote", "Borrowed view materialized as owned payload")
	SignalDecode  = capitan.NewSignal("cow.decode", "Container deserialized into owned variant")
	SignalEncode  = capitan.NewSignal("cow.encode", "Projected view serialized")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitPromote emits an event when a borrowed container pays its
// materialization cost, or fails to.
func emitPromote(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalPromote, fields...)
	} else {
		capitan.Emit(ctx, SignalPromote, fields...)
	}
}

// emitEncode emits an event when a projected view is marshaled through
// a Codec.
func emitEncode(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncode, fields...)
	} else {
		capitan.Emit(ctx, SignalEncode, fields...)
	}
}

// emitDecode emits an event when wire data is unmarshaled into an owned
// container.
func emitDecode(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecode, fields...)
	} else {
		capitan.Emit(ctx, SignalDecode, fields...)
	}
}
