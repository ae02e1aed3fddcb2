package service

// ValidationStatus discriminates audit verdicts. The set is closed; callers
// are expected to handle every variant.
type ValidationStatus string

const (
	// ValidationOk: the transaction chain fully explains the stored balance.
	ValidationOk ValidationStatus = "Ok"
	// ValidationInvalidTransactionBefore: a transaction's before-credit does
	// not continue the chain.
	ValidationInvalidTransactionBefore ValidationStatus = "InvalidTransactionBefore"
	// ValidationInvalidTransactionAfter: a transaction's own arithmetic is
	// broken (before + total != after).
	ValidationInvalidTransactionAfter ValidationStatus = "InvalidTransactionAfter"
	// ValidationInvalidSum: the chain is internally consistent but does not
	// reach the stored balance.
	ValidationInvalidSum ValidationStatus = "InvalidSum"
	// ValidationNoData: nothing recorded for the account yet.
	ValidationNoData ValidationStatus = "NoData"
	// ValidationError: infrastructure failure while replaying this account;
	// says nothing about the ledger itself.
	ValidationError ValidationStatus = "Error"
)

// ValidationResult is one account's audit verdict. Status selects which of
// the remaining fields are meaningful:
// InvalidTransactionBefore/InvalidTransactionAfter fill ExpectedCredit,
// TransactionCredit and Transaction; InvalidSum fills Expected and Actual;
// Error fills Message.
type ValidationResult struct {
	Status ValidationStatus `json:"status"`

	ExpectedCredit    int64        `json:"expectedCredit,omitempty"`
	TransactionCredit int64        `json:"transactionCredit,omitempty"`
	Transaction       *Transaction `json:"transaction,omitempty"`

	Expected int64 `json:"expected,omitempty"`
	Actual   int64 `json:"actual,omitempty"`

	Message string `json:"message,omitempty"`
}
