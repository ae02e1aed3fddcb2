package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
)

// ProductAmount names a product quantity to attach or detach.
type ProductAmount struct {
	ProductID uuid.UUID
	Amount    int64
}

// LineItem is a resolved (product, quantity) pair on a transaction.
type LineItem struct {
	Product Product
	Amount  int64
}

// LineItemService attaches and detaches per-product quantities on existing
// transactions. It enforces no credit policy; line items are receipt detail,
// independent of the balance arithmetic.
type LineItemService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewLineItemService creates a new LineItemService.
func NewLineItemService(store *storage.Storage, processor ActionProcessor) *LineItemService {
	return &LineItemService{
		storage:   store,
		processor: processor,
	}
}

// AddProducts merges the given quantities into the transaction's line items.
func (s *LineItemService) AddProducts(ctx context.Context, transactionID uuid.UUID, items []ProductAmount) error {
	return s.processor.Process(ctx, &actions.AddProducts{
		TransactionID: transactionID,
		Items:         toActionItems(items),
	})
}

// RemoveProducts subtracts the given quantities, deleting any association
// that reaches zero or below.
func (s *LineItemService) RemoveProducts(ctx context.Context, transactionID uuid.UUID, items []ProductAmount) error {
	return s.processor.Process(ctx, &actions.RemoveProducts{
		TransactionID: transactionID,
		Items:         toActionItems(items),
	})
}

// GetProducts resolves the transaction's line items against the product
// table. An association whose product no longer exists is silently dropped;
// stale references are a tolerated data gap, not a fault.
func (s *LineItemService) GetProducts(ctx context.Context, transactionID uuid.UUID) ([]LineItem, error) {
	associations, err := s.storage.TransactionProducts.ListByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	items := make([]LineItem, 0, len(associations))
	for _, association := range associations {
		row, err := s.storage.Products.FindByID(ctx, association.ProductID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}
		items = append(items, LineItem{
			Product: *productFromStorage(row),
			Amount:  association.Amount,
		})
	}
	return items, nil
}

func toActionItems(items []ProductAmount) []actions.ProductAmount {
	converted := make([]actions.ProductAmount, len(items))
	for i, item := range items {
		converted[i] = actions.ProductAmount{
			ProductID: item.ProductID,
			Amount:    item.Amount,
		}
	}
	return converted
}
