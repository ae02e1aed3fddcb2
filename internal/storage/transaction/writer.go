package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ ITransactionWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert writes a new ledger entry. There is deliberately no update or
// delete counterpart; transactions are audit records.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) error {
	query := psql.Insert(
		im.Into("transactions", "id", "account_id", "cashier_id", "total", "before_credit", "after_credit", "date"),
		im.Values(psql.Arg(
			create.ID,
			create.AccountID,
			create.CashierID,
			create.Total,
			create.BeforeCredit,
			create.AfterCredit,
			create.Date,
		)),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
