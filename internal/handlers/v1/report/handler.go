package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/credit-server/internal/logging"
	"github.com/carson-networks/credit-server/internal/service"
)

// Validator is the audit surface the report renders.
type Validator interface {
	ValidateAll(ctx context.Context) (map[uuid.UUID]service.ValidationResult, error)
}

// Entry is one account's verdict in the report. Currency fields are
// formatted in major units for display.
type Entry struct {
	Status service.ValidationStatus `json:"status"`

	ExpectedCredit    string `json:"expectedCredit,omitempty"`
	TransactionCredit string `json:"transactionCredit,omitempty"`
	TransactionID     string `json:"transactionID,omitempty"`

	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`

	Message string `json:"message,omitempty"`
}

type Handler struct {
	Audit Validator
}

func NewHandler(audit Validator) Handler {
	return Handler{Audit: audit}
}

// Handler serves GET /v1/report: the full balance audit, one verdict per
// account.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("report: method not GET")
	}

	results, err := h.Audit.ValidateAll(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	logData.AddData("accounts", len(results))

	response := make(map[string]Entry, len(results))
	for accountID, result := range results {
		response[accountID.String()] = entryFromResult(result)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response)
}

func entryFromResult(result service.ValidationResult) Entry {
	entry := Entry{
		Status:  result.Status,
		Message: result.Message,
	}

	switch result.Status {
	case service.ValidationInvalidTransactionBefore, service.ValidationInvalidTransactionAfter:
		entry.ExpectedCredit = FormatCurrency(result.ExpectedCredit)
		entry.TransactionCredit = FormatCurrency(result.TransactionCredit)
		if result.Transaction != nil {
			entry.TransactionID = result.Transaction.ID.String()
		}
	case service.ValidationInvalidSum:
		entry.Expected = FormatCurrency(result.Expected)
		entry.Actual = FormatCurrency(result.Actual)
	}

	return entry
}

// FormatCurrency renders minor currency units in major units, two decimal
// places.
func FormatCurrency(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}
