package logger

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	patientIDKey contextKey = "patient_id"
	reportIDKey  contextKey = "report_id"
	loggerKey    contextKey = "logger"
)

// fieldKeys lists the context values every log line carries, in output order
var fieldKeys = []contextKey{requestIDKey, userIDKey, patientIDKey, reportIDKey}

// WithRequestID tags ctx with a request id, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id, or ""
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// WithUserID tags ctx with the authenticated caller
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated caller, or ""
func UserIDFromContext(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

// WithPatientID tags ctx with the patient a report is computed for. It
// differs from the user id when staff read another patient's evolution.
func WithPatientID(ctx context.Context, patientID string) context.Context {
	return context.WithValue(ctx, patientIDKey, patientID)
}

// WithReportID tags ctx with the weekly report being generated
func WithReportID(ctx context.Context, reportID string) context.Context {
	return context.WithValue(ctx, reportIDKey, reportID)
}

// WithLogger stores l in ctx
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or the default logger
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// Ctx returns the context logger with every tagged id attached
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}

func stringValue(ctx context.Context, key contextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

func extractContextFields(ctx context.Context) []Field {
	var fields []Field
	for _, key := range fieldKeys {
		if v := stringValue(ctx, key); v != "" {
			fields = append(fields, String(string(key), v))
		}
	}
	return fields
}
