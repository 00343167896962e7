package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the caller may not perform the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrSourceUnavailable indicates that one record provider could not be read.
// It is never fatal to a ledger fetch; the ledger is returned flagged incomplete.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrMalformedRecord indicates that a raw record lacks a required field.
var ErrMalformedRecord = errors.New("malformed record")

// ErrIneligibleFinance indicates a finance amount outside an EMI plan's bounds.
var ErrIneligibleFinance = errors.New("finance amount not eligible for plan")

// ErrInvalidPlan indicates a catalog EMI plan whose own terms cannot be quoted.
// It is a configuration fault, not a caller error.
var ErrInvalidPlan = errors.New("invalid EMI plan configuration")

// ErrComputationInvariant indicates a programmer error detected during balance computation.
var ErrComputationInvariant = errors.New("computation invariant violated")

// SourceError records which provider failed and why.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

// Is makes errors.Is(err, ErrSourceUnavailable) hold for every SourceError.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// MalformedRecordError names the record and field that could not be mapped.
type MalformedRecordError struct {
	Source   string
	RecordID string
	Field    string
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed %s record %s: missing %s", e.Source, e.RecordID, e.Field)
	}
	return fmt.Sprintf("malformed %s record %s: %s %s", e.Source, e.RecordID, e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// FinanceBound identifies which side of a plan's range was violated.
type FinanceBound string

const (
	BoundMin FinanceBound = "min"
	BoundMax FinanceBound = "max"
)

// IneligibleFinanceError is returned when a quote is requested outside plan bounds.
// It is an expected business outcome, not a failure.
type IneligibleFinanceError struct {
	PlanID        string
	Bound         FinanceBound
	FinanceAmount decimal.Decimal
	Limit         decimal.Decimal
}

func (e *IneligibleFinanceError) Error() string {
	if e.Bound == BoundMin {
		return fmt.Sprintf("finance amount %s is below plan %s minimum %s", e.FinanceAmount.String(), e.PlanID, e.Limit.String())
	}
	return fmt.Sprintf("finance amount %s exceeds plan %s maximum %s", e.FinanceAmount.String(), e.PlanID, e.Limit.String())
}

func (e *IneligibleFinanceError) Unwrap() error {
	return ErrIneligibleFinance
}

// InvariantError describes a broken balance-computation invariant.
type InvariantError struct {
	TransactionID string
	Reason        string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("transaction %s: %s", e.TransactionID, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrComputationInvariant
}
