package accounting

import (
	"cmp"
	"slices"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
)

// unrankedPriority places kinds missing from kindPriority after every ranked kind.
const unrankedPriority = 5

// kindPriority breaks ties between transactions dated on the same day.
var kindPriority = map[domain.TransactionKind]int{
	domain.KindOpeningBalance: 0,
	domain.KindSalesOrder:     1,
	domain.KindBill:           1,
	domain.KindReturn:         2,
	domain.KindAdjustment:     2,
	domain.KindPayment:        3,
	domain.KindBillPayment:    3,
	domain.KindRefund:         4,
}

// Priority returns the same-day ordering rank of a kind (lower sorts first).
func Priority(kind domain.TransactionKind) int {
	if p, ok := kindPriority[kind]; ok {
		return p
	}
	return unrankedPriority
}

// Sequence returns a copy of txns in ledger order: calendar date ascending, then
// kind priority, then time of day. Calendar dates are read in loc (UTC when nil),
// the same zone Aggregate buckets in. Remaining ties keep their input order.
func Sequence(txns []domain.Transaction, loc *time.Location) []domain.Transaction {
	if loc == nil {
		loc = time.UTC
	}
	out := slices.Clone(txns)
	slices.SortStableFunc(out, func(a, b domain.Transaction) int {
		return compareTransactions(a, b, loc)
	})
	return out
}

func compareTransactions(a, b domain.Transaction, loc *time.Location) int {
	if c := cmp.Compare(dayKey(a.Date, loc), dayKey(b.Date, loc)); c != 0 {
		return c
	}
	if c := cmp.Compare(Priority(a.Kind), Priority(b.Kind)); c != 0 {
		return c
	}
	return a.Date.Compare(b.Date)
}

// dayKey collapses a timestamp to its calendar date in loc as yyyymmdd.
func dayKey(t time.Time, loc *time.Location) int {
	y, m, d := t.In(loc).Date()
	return y*10000 + int(m)*100 + d
}
