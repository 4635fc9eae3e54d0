package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CasinoBot_Go/internal/repository"
)

var (
	_ repository.Player     = (*Store)(nil)
	_ repository.Jackpot    = (*Store)(nil)
	_ repository.Inventory  = (*Store)(nil)
	_ repository.Effect     = (*Store)(nil)
	_ repository.SpinLog    = (*Store)(nil)
	_ repository.Transactor = (*Store)(nil)
)

// psql builds statements with $n placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store implements every repository over a pgx pool. Statements run inside the
// transaction carried by ctx when there is one.
type Store struct {
	pool    *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	manager *manager.Manager
}

// NewStore creates a Store and its transaction manager
func NewStore(pool *pgxpool.Pool) (*Store, error) {
	m, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgTxManagerFailed, err)
	}
	return &Store{
		pool:    pool,
		getter:  trmpgx.DefaultCtxGetter,
		manager: m,
	}, nil
}

// Do runs fn in one transaction. A nested call joins the outer transaction.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.manager.Do(ctx, fn)
}

func (s *Store) db(ctx context.Context) trmpgx.Tr {
	return s.getter.DefaultTrOrDB(ctx, s.pool)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// parsePlayerID rejects IDs that can never match a row
func parsePlayerID(id string) (uuid.UUID, bool) {
	u, err := uuid.Parse(id)
	return u, err == nil
}
