package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeRequest, "request"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := NewConnectionError(fmt.Errorf("connection refused"))
	want := "httpclient: connection: connection refused"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	e := NewTimeoutError(inner)
	if !errors.Is(e, inner) {
		t.Error("expected errors.Is to find the inner error")
	}
}

func TestIsHelpers(t *testing.T) {
	timeout := NewTimeoutError(fmt.Errorf("timed out"))
	conn := NewConnectionError(fmt.Errorf("refused"))
	req := NewRequestError("bad path", nil)

	if !IsTimeout(timeout) || IsTimeout(conn) || IsTimeout(req) {
		t.Error("IsTimeout misclassified")
	}
	if !IsConnection(conn) || IsConnection(timeout) {
		t.Error("IsConnection misclassified")
	}
	if !IsRequest(req) || IsRequest(conn) {
		t.Error("IsRequest misclassified")
	}
	if IsTimeout(errors.New("plain")) {
		t.Error("plain errors must not match")
	}
}
