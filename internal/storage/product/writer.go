package product

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

var _ IProductWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Create(ctx context.Context, create *ProductCreate) error {
	query := psql.Insert(
		im.Into("products", "id", "name", "category", "price"),
		im.Values(psql.Arg(create.ID, create.Name, create.Category, create.Price)),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
