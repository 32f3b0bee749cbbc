package errors

import (
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/relicscope/platform/pkg/pb"
)

func TestGRPCStatusRoundTrip(t *testing.T) {
	for code := range grpcCodeMap {
		orig := New(code, "boom")
		got := FromGRPCError(orig.GRPCStatus().Err())
		if got.Code != code {
			t.Errorf("%v: round-trip code = %v", code, got.Code)
		}
		if got.Message != orig.Error() && got.Message != orig.Message {
			t.Errorf("%v: round-trip message = %q", code, got.Message)
		}
	}
}

func TestFromGRPCErrorPlain(t *testing.T) {
	got := FromGRPCError(fmt.Errorf("not a status"))
	if got.Code != pb.ErrorCode_UNKNOWN {
		t.Errorf("code = %v, want UNKNOWN", got.Code)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := fmt.Errorf("root")
	err := Wrap(cause, pb.ErrorCode_CAPTURE_FAILED, "screenshot tool")
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return cause")
	}
	if !IsCode(err, pb.ErrorCode_CAPTURE_FAILED) {
		t.Error("IsCode failed on wrapped error")
	}
	if IsCode(cause, pb.ErrorCode_CAPTURE_FAILED) {
		t.Error("IsCode matched a plain error")
	}
}

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code pb.ErrorCode
		want codes.Code
	}{
		{pb.ErrorCode_PRICE_RATE_LIMITED, codes.ResourceExhausted},
		{pb.ErrorCode_OCR_INVALID_IMAGE, codes.InvalidArgument},
		{pb.ErrorCode_CAPTURE_FAILED, codes.Unavailable},
		{pb.ErrorCode(999), codes.Unknown},
	}
	for _, tt := range tests {
		if got := (&AppError{Code: tt.code}).GRPCCode(); got != tt.want {
			t.Errorf("GRPCCode(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(New(pb.ErrorCode_PRICE_FETCH_FAILED, "x")) {
		t.Error("PRICE_FETCH_FAILED should be retryable")
	}
	if IsRetryable(New(pb.ErrorCode_INVALID_ARGUMENT, "x")) {
		t.Error("INVALID_ARGUMENT should not be retryable")
	}
	if IsRetryable(fmt.Errorf("plain")) {
		t.Error("plain error should not be retryable")
	}
}
