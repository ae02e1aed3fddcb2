package transactionproduct

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ ITransactionProductTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListByTransaction returns the line items attached to one transaction.
func (r *Reader) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*TransactionProduct, error) {
	query := psql.Select(
		sm.Columns("transaction_id", "product_id", "amount"),
		sm.From("transaction_products"),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		sm.OrderBy(psql.Quote("product_id")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[TransactionProduct]())
	if err != nil {
		return nil, err
	}

	result := make([]*TransactionProduct, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
