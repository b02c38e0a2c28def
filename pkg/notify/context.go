package notify

import "context"

// regionKey is the context key for the ambient region.
type regionKey struct{}

// NewContext returns a child context carrying the region. Each rendering
// subtree can be given its own isolated region this way instead of
// relying on a process-wide provider.
func NewContext(ctx context.Context, r *Region) context.Context {
	return context.WithValue(ctx, regionKey{}, r)
}

// FromContext returns the region carried by ctx, or nil if none was
// attached.
func FromContext(ctx context.Context) *Region {
	if ctx == nil {
		return nil
	}
	if r, ok := ctx.Value(regionKey{}).(*Region); ok {
		return r
	}
	return nil
}
