package courier

import "context"

// ApplyNormalize runs s's Normalize hook when it has one and returns v
// unchanged otherwise.
func ApplyNormalize[T any](ctx context.Context, v T, s Schema[T]) (T, error) {
	n, ok := s.(Normalizer[T])
	if !ok {
		return v, nil
	}
	return n.Normalize(ctx, v)
}

// ApplyRefine runs s's Refine hook when it has one.
func ApplyRefine[T any](ctx context.Context, v T, s Schema[T]) error {
	r, ok := s.(Refiner[T])
	if !ok {
		return nil
	}
	return r.Refine(ctx, v)
}

// Finish is the tail of a coercion: normalize, then refine. Failures come
// back as Issues rooted at "/" and no value is returned with them.
func Finish[T any](ctx context.Context, v T, s Schema[T]) (T, error) {
	var zero T
	out, err := ApplyNormalize(ctx, v, s)
	if err != nil {
		return zero, ToIssues("/", err)
	}
	if err := ApplyRefine(ctx, out, s); err != nil {
		return zero, ToIssues("/", err)
	}
	return out, nil
}
