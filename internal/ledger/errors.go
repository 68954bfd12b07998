package ledger

import "errors"

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrUnknownCurrency   = errors.New("currency must be EUR or DH")
	ErrEntryNotFound     = errors.New("ledger entry not found")
)
