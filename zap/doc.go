// Package zap adapts go.uber.org/zap to the money/log Logger interface.
//
// New builds an environment-profiled JSON logger whose core is teed into the
// OpenTelemetry log bridge; entries logged with a span-carrying context are
// tagged with trace_id and span_id.
package zap
