package content

import "context"

type actorKey struct{}

// WithActor returns a context carrying the name of the acting admin.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey{}, name)
}

// ActorFrom returns the admin stored by WithActor.
func ActorFrom(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(actorKey{}).(string)
	return name, ok && name != ""
}
