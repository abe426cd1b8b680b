package contract

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failure leaving the contract wraps exactly one of
// them in an *Error, so callers can match with errors.Is.
var (
	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrNotFound            = errors.New("not found")
	ErrContractPaused      = errors.New("contract is paused")
	ErrProjectPaused       = errors.New("project is paused")
	ErrEditionLimitReached = errors.New("edition limit reached")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrInvalidPrice        = errors.New("price must be greater than zero")
	ErrInvalidSupply       = errors.New("max supply must be greater than zero")
	ErrInvalidFee          = errors.New("fee must be below 10000 bp")
	ErrInvalidAuthor       = errors.New("author must not be the zero address")
	ErrInvalidRecipient    = errors.New("recipient must not be the zero address")
	ErrInvalidAddress      = errors.New("address must not be the zero address")
	ErrUnexpectedPayment   = errors.New("operation does not accept value")
	ErrAlreadyPaused       = errors.New("already paused")
	ErrNotPaused           = errors.New("not paused")
	ErrAlreadyInitialized  = errors.New("contract already initialized")
	ErrNotInitialized      = errors.New("contract not initialized")
	ErrReentrantCall       = errors.New("reentrant call")
	ErrTransferFailed      = errors.New("value transfer failed")
	ErrSchemaTooNew        = errors.New("stored schema is newer than this build")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrCorruptState        = errors.New("stored state is corrupt")
)

// revertCode is the JSON-RPC code for a reverted execution.
const revertCode = 3

var symbols = map[error]string{
	ErrUnauthorized:        "unauthorized",
	ErrNotFound:            "not_found",
	ErrContractPaused:      "contract_paused",
	ErrProjectPaused:       "project_paused",
	ErrEditionLimitReached: "edition_limit",
	ErrInsufficientPayment: "insufficient_payment",
	ErrInvalidPrice:        "invalid_price",
	ErrInvalidSupply:       "invalid_supply",
	ErrInvalidFee:          "invalid_fee",
	ErrInvalidAuthor:       "invalid_author",
	ErrInvalidRecipient:    "invalid_recipient",
	ErrInvalidAddress:      "invalid_address",
	ErrUnexpectedPayment:   "unexpected_payment",
	ErrAlreadyPaused:       "already_paused",
	ErrNotPaused:           "not_paused",
	ErrAlreadyInitialized:  "already_initialized",
	ErrNotInitialized:      "not_initialized",
	ErrReentrantCall:       "reentrant_call",
	ErrTransferFailed:      "transfer_failed",
	ErrSchemaTooNew:        "schema_too_new",
	ErrInvalidPayload:      "invalid_payload",
	ErrCorruptState:        "corrupt_state",
}

// Error is a revert: a sentinel plus a short machine readable symbol and an
// optional human detail.
type Error struct {
	Symbol string
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorCode and ErrorData let go-ethereum's rpc server report reverts with
// code 3 and the symbol as data.
func (e *Error) ErrorCode() int { return revertCode }

func (e *Error) ErrorData() interface{} { return e.Symbol }

// revert wraps a sentinel into an *Error.
// Example payload: revert(ErrNotFound, "project %d", 7)
func revert(sentinel error, format string, args ...interface{}) *Error {
	e := &Error{Symbol: symbolFor(sentinel), Err: sentinel}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}
	return e
}

func symbolFor(err error) string {
	if s, ok := symbols[err]; ok {
		return s
	}
	return "error"
}

// Symbol returns the revert symbol of err, or "" when err is nil. Errors that
// did not originate from the contract map to "error".
func Symbol(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Symbol
	}
	for sentinel, s := range symbols {
		if errors.Is(err, sentinel) {
			return s
		}
	}
	return "error"
}

// wrapCause tags an infrastructure error with sentinel, keeping both matchable.
// Errors that already carry a revert pass through.
func wrapCause(sentinel error, cause error) error {
	var e *Error
	if errors.As(cause, &e) {
		return cause
	}
	return &Error{Symbol: symbolFor(sentinel), Err: fmt.Errorf("%w: %w", sentinel, cause)}
}

// asRevert normalizes any error escaping an operation into an *Error.
// Ledger failures are tagged where they happen, so whatever is left untagged
// comes from decoding stored records and indexes.
func asRevert(err error) error {
	if err == nil {
		return nil
	}
	return wrapCause(ErrCorruptState, err)
}
