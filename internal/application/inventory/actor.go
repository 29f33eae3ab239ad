package inventory

import "context"

// Actor quem disparou a operação (vem do token na borda HTTP).
type Actor struct {
	UserID     string
	FacilityID string
	Role       string
}

type actorKey struct{}

// WithActor anexa o ator ao contexto.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom ator do contexto; vazio quando a chamada não veio da API (ex.: cmd/reconcile).
func ActorFrom(ctx context.Context) Actor {
	a, _ := ctx.Value(actorKey{}).(Actor)
	return a
}
