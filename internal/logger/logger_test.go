package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestNewSelectsBackend(t *testing.T) {
	for _, backend := range []string{"", BackendSlog, BackendZap} {
		l, err := New(Config{Level: LevelDebug, Format: "json", Backend: backend})
		if err != nil {
			t.Fatalf("backend %q: unexpected error %v", backend, err)
		}
		if l.Level() != LevelDebug {
			t.Errorf("backend %q: expected debug level, got %s", backend, l.Level())
		}
	}

	if _, err := New(Config{Backend: "zerolog"}); err == nil {
		t.Error("expected unknown backend to fail")
	}
}

func TestContextFields(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	ctx = WithUserID(ctx, "u1")

	if RequestIDFromContext(ctx) == "" {
		t.Error("expected a generated request id")
	}

	fields := extractContextFields(ctx)
	if len(fields) != 2 {
		t.Fatalf("expected 2 context fields, got %d", len(fields))
	}
	if fields[1].Key != "user_id" || fields[1].Value != "u1" {
		t.Errorf("unexpected user field %+v", fields[1])
	}
}

func TestContextFieldsKeepOrder(t *testing.T) {
	ctx := WithReportID(context.Background(), "week-2024-1")
	ctx = WithPatientID(ctx, "p1")
	ctx = WithUserID(ctx, "s1")
	ctx = WithRequestID(ctx, "req-1")

	var keys []string
	for _, f := range extractContextFields(ctx) {
		keys = append(keys, f.Key)
	}
	want := []string{"request_id", "user_id", "patient_id", "report_id"}
	if len(keys) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("field %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	custom := NewSlogLogger(Config{Level: LevelError})
	ctx := WithLogger(context.Background(), custom)

	if FromContext(ctx) != custom {
		t.Error("expected logger stored in context")
	}
	if FromContext(context.Background()) != Default() {
		t.Error("expected default logger without one in context")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": LevelDebug, "WARNING": LevelWarn, "error": LevelError, "bogus": LevelInfo}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestBackendsWriteContextFields(t *testing.T) {
	for _, backend := range []string{BackendSlog, BackendZap} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Level: LevelInfo, Format: "json", Backend: backend, Output: &buf})
			if err != nil {
				t.Fatal(err)
			}

			ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "u1")
			l.WithContext(ctx).Info("report generated", String("report_id", "week-2024-1"), Int("patients", 3))
			l.Debug("dropped below level")

			var entry map[string]any
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
				t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
			}
			if entry["msg"] != "report generated" {
				t.Errorf("unexpected msg %v", entry["msg"])
			}
			if entry["request_id"] != "req-1" || entry["user_id"] != "u1" {
				t.Errorf("missing context fields in %v", entry)
			}
			if entry["report_id"] != "week-2024-1" || entry["patients"] != float64(3) {
				t.Errorf("missing call fields in %v", entry)
			}
		})
	}
}
