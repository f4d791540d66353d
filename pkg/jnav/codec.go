package jnav

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/jnav/pkg/jnav/internal"
)

var codecFailures atomic.Int64

// Encode serializes v to JSON. A value that cannot be serialized yields ""
// and the failure is logged.
func Encode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		recordCodecFailure(NewCodecError("encode", fmt.Sprintf("%T", v), err))
		return ""
	}
	return string(data)
}

// Decode deserializes JSON text into a T. Empty or "null" text yields
// (zero, false) silently; malformed text or a shape mismatch yields
// (zero, false) and the failure is logged.
func Decode[T any](text string) (T, bool) {
	var zero T
	var out *T
	if !DecodeInto(text, &out) || out == nil {
		return zero, false
	}
	return *out, true
}

// DecodeInto deserializes JSON text into the value v points to and reports
// whether anything was decoded.
func DecodeInto(text string, v any) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "null" {
		return false
	}

	if err := json.Unmarshal([]byte(trimmed), v); err != nil {
		recordCodecFailure(NewCodecError("decode", fmt.Sprintf("%T", v), err))
		return false
	}
	return true
}

// CodecFailures returns the number of encode and decode failures so far.
func CodecFailures() int64 {
	return codecFailures.Load()
}

func recordCodecFailure(err *CodecError) {
	codecFailures.Inc()
	internal.GetInternalLogger().Error("payload conversion failed", "op", err.Op, "type", err.Type, "error", err.Err)
}
