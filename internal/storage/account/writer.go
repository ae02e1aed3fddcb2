package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IAccountWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate re-reads the authoritative account row inside the
// transaction, row-locked so the subsequent credit update cannot race.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := psql.Select(
		sm.Columns("id", "name", "credit", "minimum_credit", "created_at"),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (w *Writer) Create(ctx context.Context, create *AccountCreate) error {
	query := psql.Insert(
		im.Into("accounts", "id", "name", "credit", "minimum_credit"),
		im.Values(psql.Arg(create.ID, create.Name, create.Credit, create.MinimumCredit)),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

func (w *Writer) UpdateCredit(ctx context.Context, id uuid.UUID, credit int64) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("credit").ToArg(credit),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
