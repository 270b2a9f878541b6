package ports

import "context"

// CreateGuard serializes concurrent create attempts on the same natural key
// (user email, admin email, or user+machineId pair). The store has no unique
// constraints, so without the guard two simultaneous signups for the same
// email could both pass the pre-write existence check and insert duplicates.
//
// The guard is best-effort: implementations may fail open when the backing
// store is unavailable, restoring the original unchecked behavior.
type CreateGuard interface {
	// Claim attempts to take the short-lived creation claim for key.
	// Returns false when another request currently holds it.
	Claim(ctx context.Context, key string) (bool, error)
	// Release frees the claim once the insert has completed or failed.
	Release(ctx context.Context, key string)
}
