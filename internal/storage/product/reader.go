package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ IProductTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a product by primary key. A missing row returns
// (nil, nil); the line-item ledger treats that as a tolerable data gap.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	query := psql.Select(
		sm.Columns("id", "name", "category", "price", "created_at"),
		sm.From("products"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Product]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// List returns all products ordered by category then name.
func (r *Reader) List(ctx context.Context) ([]*Product, error) {
	query := psql.Select(
		sm.Columns("id", "name", "category", "price", "created_at"),
		sm.From("products"),
		sm.OrderBy(psql.Quote("category")).Asc(),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Product]())
	if err != nil {
		return nil, err
	}

	result := make([]*Product, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
