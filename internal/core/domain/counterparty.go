package domain

import "fmt"

// CounterpartyType is the role of the party a ledger is built for.
type CounterpartyType string

const (
	Customer CounterpartyType = "customer"
	Supplier CounterpartyType = "supplier"
	Employee CounterpartyType = "employee"
)

// ParseCounterpartyType validates a raw counter-party type string.
func ParseCounterpartyType(s string) (CounterpartyType, error) {
	switch t := CounterpartyType(s); t {
	case Customer, Supplier, Employee:
		return t, nil
	default:
		return "", fmt.Errorf("unknown counterparty type '%s'", s)
	}
}

// BalancePolicy is the sign convention applied by the running-balance accumulator.
type BalancePolicy int

const (
	// Debtor ledgers (customer, supplier): debits increase the balance owed.
	Debtor BalancePolicy = iota
	// Payee ledgers (employee): credits increase the cumulative amount paid out.
	Payee
)

func (p BalancePolicy) String() string {
	switch p {
	case Debtor:
		return "debtor"
	case Payee:
		return "payee"
	default:
		return fmt.Sprintf("BalancePolicy(%d)", int(p))
	}
}

// Policy resolves the balance sign convention for the counter-party role.
func (t CounterpartyType) Policy() BalancePolicy {
	if t == Employee {
		return Payee
	}
	return Debtor
}
