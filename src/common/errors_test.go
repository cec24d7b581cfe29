package common

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestWrapProtocolError(t *testing.T) {
	//nil passes through so it can wrap a fallible call's return
	if err := WrapProtocolError(nil, "reading key"); err != nil {
		t.Fatalf("wrapping nil should return nil, not %v", err)
	}

	cause := fmt.Errorf("unexpected EOF")
	err := WrapProtocolError(cause, "reading key")
	if err == nil {
		t.Fatal("wrapping a non-nil error should not return nil")
	}

	if msg := err.Error(); !strings.HasPrefix(msg, "reading key: ") {
		t.Fatalf("message should carry the context prefix, not %s", msg)
	}

	if !IsProtocolError(err) {
		t.Fatalf("wrapped error should be a ProtocolError")
	}

	//the cause remains reachable through the Unwrap chain
	if errors.Cause(errors.Unwrap(err)) != cause {
		t.Fatalf("Unwrap should lead back to the cause")
	}
}

func TestIsProtocolError(t *testing.T) {
	if IsProtocolError(nil) {
		t.Fatalf("nil is not a ProtocolError")
	}

	if IsProtocolError(fmt.Errorf("plain")) {
		t.Fatalf("a plain error is not a ProtocolError")
	}

	perr := NewProtocolError("protocol violated")
	if !IsProtocolError(perr) {
		t.Fatalf("a ProtocolError should be recognized")
	}
	if perr.Error() != "protocol violated" {
		t.Fatalf("message without a cause should be bare, not %s", perr.Error())
	}
}
