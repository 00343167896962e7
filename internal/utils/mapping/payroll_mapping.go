package mapping

import (
	"fmt"

	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

var payrollKinds = map[domain.PayrollLineType]domain.TransactionKind{
	domain.PayrollSalary:    domain.KindSalary,
	domain.PayrollOvertime:  domain.KindOvertime,
	domain.PayrollIncentive: domain.KindIncentive,
}

// PayrollLineToTransaction maps a payroll line to a credit sized by its amount and
// tagged with its sub-kind. Payroll entries are the only deletable ledger entries.
func PayrollLineToTransaction(r domain.PayrollLine) (domain.Transaction, error) {
	if err := requireRecord(SourcePayroll, r.LineID, r.PayDate); err != nil {
		return domain.Transaction{}, err
	}
	kind, ok := payrollKinds[r.LineType]
	if !ok {
		return domain.Transaction{}, &apperrors.MalformedRecordError{Source: SourcePayroll, RecordID: r.LineID, Field: "line_type", Reason: fmt.Sprintf("'%s' is not a payroll type", r.LineType)}
	}
	amount, err := requireAmount(SourcePayroll, r.LineID, "amount", r.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := creditTxn(TransactionID(SourcePayroll, r.LineID), kind, r.PayDate, amount)
	txn.Description = firstNonEmpty(r.Description, payrollLabel(kind))
	txn.Reference = r.Reference
	txn.Status = NormalizeStatus(firstNonEmpty(r.Status, "paid"))
	txn.SourceDocument = fmt.Sprintf("payroll_records/%s", r.LineID)
	txn.Deletable = true
	return txn, nil
}

// EmployeeSalary unwraps an employee's contracted monthly salary. A missing
// salary is a malformed employee record, never a zero salary.
func EmployeeSalary(employeeID string, salary decimal.NullDecimal) (decimal.Decimal, error) {
	return requireAmount(SourceEmployee, employeeID, "monthly_salary", salary)
}

func payrollLabel(kind domain.TransactionKind) string {
	switch kind {
	case domain.KindOvertime:
		return "Overtime payment"
	case domain.KindIncentive:
		return "Incentive payment"
	default:
		return "Salary payment"
	}
}
