package dispatch

import (
	"testing"
)

func TestDecodeContextSuppression(t *testing.T) {
	ctx := NewDecodeContext()

	if ctx.IsSuppressed("result") {
		t.Fatal("fresh context should suppress nothing")
	}

	release := ctx.Suppress("result")
	if !ctx.IsSuppressed("result") {
		t.Error("expected result to be suppressed")
	}
	if ctx.IsSuppressed("other") {
		t.Error("unrelated supertype should not be suppressed")
	}

	release()
	if ctx.IsSuppressed("result") {
		t.Error("expected suppression to be released")
	}
}

func TestDecodeContextNestedSuppression(t *testing.T) {
	ctx := NewDecodeContext()

	outer := ctx.Suppress("result")
	inner := ctx.Suppress("result")

	inner()
	if !ctx.IsSuppressed("result") {
		t.Error("outer suppression must survive inner release")
	}

	outer()
	if ctx.IsSuppressed("result") {
		t.Error("expected all suppression released")
	}
}

func TestDecodeContextReleaseIsIdempotent(t *testing.T) {
	ctx := NewDecodeContext()

	release := ctx.Suppress("result")
	other := ctx.Suppress("result")

	release()
	release() // second call must not release the other hold
	if !ctx.IsSuppressed("result") {
		t.Error("double release leaked through")
	}

	other()
	if ctx.IsSuppressed("result") {
		t.Error("expected all suppression released")
	}
}

func TestDecodeContextNilReceiver(t *testing.T) {
	var ctx *DecodeContext
	if ctx.IsSuppressed("result") {
		t.Error("nil context should suppress nothing")
	}
}
