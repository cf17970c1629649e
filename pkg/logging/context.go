package logging

import "context"

type contextKey string

const (
	generationKey contextKey = "solver_generation"
	searchInfoKey contextKey = "solver_search_info"
)

// WithGeneration annotates the context with the current generation number.
func WithGeneration(ctx context.Context, generation int) context.Context {
	return context.WithValue(ctx, generationKey, generation)
}

// GetGeneration extracts the generation number from the context.
func GetGeneration(ctx context.Context) (int, bool) {
	gen, ok := ctx.Value(generationKey).(int)
	return gen, ok
}

// WithSearchInfo annotates the context with a search progress snapshot.
func WithSearchInfo(ctx context.Context, info *SearchInfo) context.Context {
	return context.WithValue(ctx, searchInfoKey, info)
}

// GetSearchInfo extracts the search progress snapshot from the context.
func GetSearchInfo(ctx context.Context) (*SearchInfo, bool) {
	info, ok := ctx.Value(searchInfoKey).(*SearchInfo)
	return info, ok
}
