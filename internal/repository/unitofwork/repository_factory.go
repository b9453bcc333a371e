package unitofwork

import "context"

// RepositoryFactory builds fresh UnitOfWork instances. Services hold
// the factory, never a shared UnitOfWork, so transactional state stays
// request-local.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
