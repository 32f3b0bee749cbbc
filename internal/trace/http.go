package trace

import "net/http"

// Middleware continues the caller's trace from request headers, or starts
// a new one, before the request reaches the API handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc := Context{
			TraceID:      r.Header.Get(TraceIDKey),
			ParentSpanID: r.Header.Get(SpanIDKey),
			SpanID:       generateSpanID(),
		}
		if tc.TraceID == "" {
			tc.TraceID = generateTraceID()
		}
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tc)))
	})
}
