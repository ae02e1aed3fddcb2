package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ ITransactionTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a transaction by primary key. A missing row returns
// (nil, nil).
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns("id", "account_id", "cashier_id", "total", "before_credit", "after_credit", "date", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByAccount returns an account's transactions ordered by date ascending,
// the order the ledger chain is defined in. The optional filter narrows the
// result to a date window.
func (r *Reader) ListByAccount(ctx context.Context, accountID uuid.UUID, filter *ListFilter) ([]*Transaction, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	}
	if filter != nil {
		if filter.From != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.To))))
		}
	}

	query := psql.Select(
		sm.Columns("id", "account_id", "cashier_id", "total", "before_credit", "after_credit", "date", "created_at"),
		sm.From("transactions"),
		psql.WhereAnd(whereMods...),
		sm.OrderBy(psql.Quote("date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
