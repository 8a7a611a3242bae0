package gateway

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const scopeName = "github.com/riteshh/seeforme-core/core/transcription/gateway"

var (
	tracer = otel.Tracer(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

func audioBytesAttribute(n int) attribute.KeyValue {
	return attribute.Int("transcribe.audio_bytes", n)
}

func statusAttribute(status int) attribute.KeyValue {
	return attribute.Int("http.response.status_code", status)
}
