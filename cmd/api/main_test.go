package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExitCode(t *testing.T) {
	t.Run("success is silent", func(t *testing.T) {
		var buf bytes.Buffer
		if code := exitCode(&buf, nil); code != 0 || buf.Len() != 0 {
			t.Fatalf("expected 0 and no output, got %d %q", code, buf.String())
		}
	})

	t.Run("startup failure is reported", func(t *testing.T) {
		var buf bytes.Buffer
		code := exitCode(&buf, errors.New("DATABASE_URL is required"))
		if code != 1 {
			t.Fatalf("expected exit code 1, got %d", code)
		}
		if !strings.Contains(buf.String(), "DATABASE_URL is required") {
			t.Fatalf("expected error on output, got %q", buf.String())
		}
	})
}
