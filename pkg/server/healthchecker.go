package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// CheckerFunc adapts a plain function to HealthChecker.
type CheckerFunc func(ctx context.Context) bool

func (f CheckerFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

// All reports healthy only when every checker does.
func All(checkers ...HealthChecker) HealthChecker {
	return CheckerFunc(func(ctx context.Context) bool {
		for _, c := range checkers {
			if !c.Healthy(ctx) {
				return false
			}
		}
		return true
	})
}
