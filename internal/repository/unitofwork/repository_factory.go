package unitofwork

import "context"

// RepositoryFactory hands out a fresh UnitOfWork per operation. Catalog reads
// and the embedding store each take their own.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
