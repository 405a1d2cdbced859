package repositories

import "context"

// UnitOfWork runs fn inside one database transaction. The transaction travels
// in the ctx handed to fn, and repositories called with that ctx join it.
// A Do nested inside another joins the outer transaction, so a batch of
// availability records commits or rolls back as a whole.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
