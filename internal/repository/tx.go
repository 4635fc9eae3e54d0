package repository

import "context"

// Transactor runs fn as one atomic unit. Repository calls made with the ctx passed to fn
// join the unit; an error returned by fn rolls every write back.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
