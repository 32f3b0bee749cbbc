package trace

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryClientInterceptor propagates the trace context to the OCR service
// as gRPC metadata, starting a trace when the call has none.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		tc, ok := FromContext(ctx)
		if !ok {
			tc = New()
			ctx = WithContext(ctx, tc)
		}

		md, ok := metadata.FromOutgoingContext(ctx)
		if !ok {
			md = metadata.New(nil)
		} else {
			md = md.Copy()
		}
		md.Set(TraceIDKey, tc.TraceID)
		md.Set(SpanIDKey, tc.SpanID)
		if tc.ParentSpanID != "" {
			md.Set(ParentSpanIDKey, tc.ParentSpanID)
		}

		return invoker(metadata.NewOutgoingContext(ctx, md), method, req, reply, cc, opts...)
	}
}
