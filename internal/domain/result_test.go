package domain

import (
	"errors"
	"testing"
)

func TestResultVariants(t *testing.T) {
	ok := Ok(42)
	if !ok.IsSuccess() || ok.Value() != 42 || ok.ErrCause() != nil {
		t.Fatalf("unexpected success result: %+v", ok)
	}

	cause := errors.New("boom")
	bad := Err[int](cause)
	if bad.IsSuccess() {
		t.Fatalf("error result reports success")
	}
	if !errors.Is(bad.ErrCause(), cause) {
		t.Fatalf("cause lost: %v", bad.ErrCause())
	}
	if v, err := bad.Get(); v != 0 || err == nil {
		t.Fatalf("Get on error result: v=%d err=%v", v, err)
	}
}

func TestZeroResultIsError(t *testing.T) {
	var r Result[string]
	if r.IsSuccess() {
		t.Fatalf("zero result must not be success")
	}
	if r.ErrCause() == nil {
		t.Fatalf("zero result must carry a cause")
	}
}

func TestErrNilCause(t *testing.T) {
	r := Err[int](nil)
	if r.IsSuccess() || r.ErrCause() == nil {
		t.Fatalf("Err(nil) must still be an error result")
	}
}
