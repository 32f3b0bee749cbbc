package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestIDShapes(t *testing.T) {
	tc := New()
	if len(tc.TraceID) != 32 {
		t.Errorf("trace id length = %d, want 32 hex chars", len(tc.TraceID))
	}
	if len(tc.SpanID) != 16 {
		t.Errorf("span id length = %d, want 16 hex chars", len(tc.SpanID))
	}
	if tc.ParentSpanID != "" {
		t.Error("fresh context should have no parent span")
	}
}

func TestIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateTraceID()
		if seen[id] {
			t.Fatal("duplicate trace id")
		}
		seen[id] = true
	}
}

func TestChildInheritsTrace(t *testing.T) {
	parent := New()
	child := NewChild(parent)

	if child.TraceID != parent.TraceID {
		t.Error("child should stay in the parent's trace")
	}
	if child.SpanID == parent.SpanID {
		t.Error("child should get its own span id")
	}
	if child.ParentSpanID != parent.SpanID {
		t.Error("child's parent should be the parent's span")
	}
}

func TestContextRoundTrip(t *testing.T) {
	tc := New()
	ctx := WithContext(context.Background(), tc)

	got, ok := FromContext(ctx)
	if !ok || got.TraceID != tc.TraceID {
		t.Errorf("FromContext = %+v, %v", got, ok)
	}

	if _, ok := FromContext(context.Background()); ok {
		t.Error("empty context should carry no trace")
	}
}

func TestEnsureContext(t *testing.T) {
	ctx, tc := EnsureContext(context.Background())
	if len(tc.TraceID) != 32 {
		t.Fatal("should start a trace when none exists")
	}

	_, tc2 := EnsureContext(ctx)
	if tc2.TraceID != tc.TraceID {
		t.Error("should keep the existing trace")
	}
}

func TestSpanNesting(t *testing.T) {
	ctx, outer := StartSpan(context.Background(), "pipeline_pass")
	_, inner := StartSpan(ctx, "price_resolve")

	if inner.Ctx.TraceID != outer.Ctx.TraceID {
		t.Error("inner span should share the trace")
	}
	if inner.Ctx.ParentSpanID != outer.Ctx.SpanID {
		t.Error("inner span should nest under the outer span")
	}

	outer.SetAttr("seq", 7)
	outer.End()
	if outer.Duration() <= 0 {
		t.Error("ended span should report a positive duration")
	}
	if outer.Attrs["seq"] != 7 {
		t.Errorf("attrs = %v", outer.Attrs)
	}
}

func TestLoggerWithTrace(t *testing.T) {
	ctx := WithContext(context.Background(), New())
	Logger(ctx).Debug("annotated")
	Logger(context.Background()).Debug("plain")
}

func TestMiddlewareContinuesTrace(t *testing.T) {
	var got Context
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/valuation", nil)
	req.Header.Set(TraceIDKey, "0af7651916cd43dd8448eb211c80319c")
	req.Header.Set(SpanIDKey, "b7ad6b7169203331")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got.TraceID != "0af7651916cd43dd8448eb211c80319c" {
		t.Errorf("trace id = %q, want the caller's", got.TraceID)
	}
	if got.ParentSpanID != "b7ad6b7169203331" {
		t.Errorf("parent span = %q, want the caller's span", got.ParentSpanID)
	}
}

func TestMiddlewareStartsTrace(t *testing.T) {
	var got Context
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if len(got.TraceID) != 32 {
		t.Error("middleware should start a trace for untraced requests")
	}
}

func TestUnaryClientInterceptorInjectsMetadata(t *testing.T) {
	tc := New()
	ctx := WithContext(context.Background(), tc)

	var md metadata.MD
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	if err := UnaryClientInterceptor()(ctx, "/vision.VisionService/Recognize", nil, nil, nil, invoker); err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if got := md.Get(TraceIDKey); len(got) != 1 || got[0] != tc.TraceID {
		t.Errorf("metadata trace id = %v, want %q", got, tc.TraceID)
	}
	if got := md.Get(SpanIDKey); len(got) != 1 || got[0] != tc.SpanID {
		t.Errorf("metadata span id = %v, want %q", got, tc.SpanID)
	}
}
