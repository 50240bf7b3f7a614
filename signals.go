package fieldlens

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for field access events.
var (
	SignalResolveComplete = capitan.NewSignal("fieldlens.resolve.complete", "Field resolution finished")
	SignalAccessForced    = capitan.NewSignal("fieldlens.access.forced", "Field accessibility forced open")
	SignalReadComplete    = capitan.NewSignal("fieldlens.read.complete", "Field read finished")
	SignalWriteComplete   = capitan.NewSignal("fieldlens.write.complete", "Field write finished")
)

// Keys for typed event data.
var (
	KeyTypeName      = capitan.NewStringKey("type_name")
	KeyFieldName     = capitan.NewStringKey("field_name")
	KeyDeclaringType = capitan.NewStringKey("declaring_type")
	KeySearchMode    = capitan.NewStringKey("search_mode")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
)

// The library surface is synchronous with no suspension points, so events
// carry a background context rather than threading one through the API.

// emitResolveComplete emits an event when a resolution finishes.
func emitResolveComplete(mode, typeName, fieldName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySearchMode.Field(mode),
		KeyTypeName.Field(typeName),
		KeyFieldName.Field(fieldName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalResolveComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalResolveComplete, fields...)
	}
}

// emitAccessForced emits an event when a field's accessibility flag is
// opened. Emitted at most once per descriptor in the absence of races.
func emitAccessForced(declaringType, fieldName string) {
	capitan.Emit(context.Background(), SignalAccessForced,
		KeyDeclaringType.Field(declaringType),
		KeyFieldName.Field(fieldName),
	)
}

// emitReadComplete emits an event when a read finishes.
func emitReadComplete(declaringType, fieldName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyDeclaringType.Field(declaringType),
		KeyFieldName.Field(fieldName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalReadComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalReadComplete, fields...)
	}
}

// emitWriteComplete emits an event when a write finishes.
func emitWriteComplete(declaringType, fieldName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyDeclaringType.Field(declaringType),
		KeyFieldName.Field(fieldName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalWriteComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalWriteComplete, fields...)
	}
}
