package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/dvloznov/splitledger/internal/domain"
)

// shareSumTolerance bounds how far a share list may drift from summing to
// 1 before it is flagged.
var shareSumTolerance = decimal.NewFromFloat(0.01)

// CheckShareSum returns the sum of tx's shares and whether it is 1 within
// tolerance. Uneven sums are still accepted, keeping the ledger lenient,
// but they mean the group collectively over- or under-pays the payer, so
// the reader logs a warning for them.
func CheckShareSum(tx domain.Transaction) (decimal.Decimal, bool) {
	sum := decimal.Zero
	for _, s := range tx.Shares {
		sum = sum.Add(s)
	}
	ok := sum.Sub(decimal.NewFromInt(1)).Abs().Cmp(shareSumTolerance) <= 0
	return sum, ok
}
