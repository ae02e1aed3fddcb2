package service

import (
	"context"

	"github.com/carson-networks/credit-server/internal/operator/actions"
	"github.com/carson-networks/credit-server/internal/storage"
)

// ActionProcessor runs an action inside one storage transaction. Satisfied
// by operator.OperatorDelegator.
//
//go:generate mockery --name ActionProcessor --output mock_ActionProcessor.go
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Product     *ProductService
	Transaction *TransactionService
	LineItem    *LineItemService
	Audit       *AuditService
}

// NewService creates a new Service with the given storage and write path.
// allowZeroAmount is the zero-amount transaction policy.
func NewService(store *storage.Storage, processor ActionProcessor, allowZeroAmount bool) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Product:     NewProductService(store),
		Transaction: NewTransactionService(store, processor, allowZeroAmount),
		LineItem:    NewLineItemService(store, processor),
		Audit:       NewAuditService(store),
	}
}
