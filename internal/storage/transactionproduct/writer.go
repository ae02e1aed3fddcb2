package transactionproduct

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ ITransactionProductWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindForUpdate reads one association row-locked, so concurrent merges on
// the same (transaction, product) pair cannot lose updates. A missing row
// returns (nil, nil).
func (w *Writer) FindForUpdate(ctx context.Context, transactionID, productID uuid.UUID) (*TransactionProduct, error) {
	query := psql.Select(
		sm.Columns("transaction_id", "product_id", "amount"),
		sm.From("transaction_products"),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		sm.Where(psql.Quote("product_id").EQ(psql.Arg(productID))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[TransactionProduct]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (w *Writer) Insert(ctx context.Context, transactionID, productID uuid.UUID, amount int64) error {
	query := psql.Insert(
		im.Into("transaction_products", "transaction_id", "product_id", "amount"),
		im.Values(psql.Arg(transactionID, productID, amount)),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

func (w *Writer) UpdateAmount(ctx context.Context, transactionID, productID uuid.UUID, amount int64) error {
	query := psql.Update(
		um.Table("transaction_products"),
		um.SetCol("amount").ToArg(amount),
		um.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		um.Where(psql.Quote("product_id").EQ(psql.Arg(productID))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

func (w *Writer) Delete(ctx context.Context, transactionID, productID uuid.UUID) error {
	query := psql.Delete(
		dm.From("transaction_products"),
		dm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		dm.Where(psql.Quote("product_id").EQ(psql.Arg(productID))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
