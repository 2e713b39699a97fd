package workspace

import "context"

// Manager hands out isolated working directories for pipeline runs
type Manager interface {
	Acquire() (Artifacts, error)
	Release(ctx context.Context, a Artifacts)
}
