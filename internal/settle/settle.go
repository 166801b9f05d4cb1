package settle

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/splitledger/internal/domain"
	"github.com/dvloznov/splitledger/internal/money"
)

// ErrUnbalancedLedger reports a settlement run over balances whose credits
// and debits do not cancel. It signals a bug upstream of the engine, not
// bad user input, and the run cannot continue.
var ErrUnbalancedLedger = errors.New("settle: ledger does not balance")

// Residual is a balance that failed to clear within rounding tolerance.
type Residual struct {
	Participant domain.Participant
	Balance     money.Money
}

// Settle consumes net balances and returns the payments that zero them, at
// most one fewer than the registry size. The map is working state for the
// run: it is mutated in place and holds the residual balances afterwards.
//
// Each round the participant owing the most pays the participant owed the
// most, which zeroes whichever of the two had the smaller magnitude. Exact
// ties break toward the lowest registry ordinal. The emitted transactions
// put the creditor in the payer seat with the debtor as sole beneficiary,
// so Describe renders them as "debtor owes creditor".
func Settle(balances map[domain.Participant]money.Money) ([]domain.Transaction, error) {
	one := decimal.NewFromInt(1)

	var payments []domain.Transaction
	for !allZero(balances) {
		if len(payments) >= domain.ParticipantCount {
			return payments, fmt.Errorf("Settle: no convergence after %d payments: %w", len(payments), ErrUnbalancedLedger)
		}

		debtor, creditor := extremes(balances)
		if debtor == creditor {
			return payments, fmt.Errorf("Settle: %s is both biggest debtor and biggest creditor: %w", debtor, ErrUnbalancedLedger)
		}

		amount := balances[creditor]
		if owed := balances[debtor].Abs(); owed.Cmp(amount) < 0 {
			amount = owed
		}
		if amount.Round().Amount.Sign() <= 0 {
			// A stalled round: someone still has a non-zero balance but no
			// transferable cent remains on the other side.
			return payments, fmt.Errorf("Settle: stalled on a zero-value payment: %w", ErrUnbalancedLedger)
		}

		balances[debtor] = balances[debtor].Add(amount)
		balances[creditor] = balances[creditor].Sub(amount)

		payment, err := domain.NewTransaction(amount.Round(), creditor,
			[]domain.Participant{debtor}, []decimal.Decimal{one}, "")
		if err != nil {
			return payments, fmt.Errorf("Settle: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// Residuals reports post-settlement balances that did not clear. A
// non-empty result is an anomaly worth flagging alongside the payment
// list, not a fatal condition.
func Residuals(balances map[domain.Participant]money.Money) []Residual {
	var out []Residual
	for _, p := range domain.All() {
		if b := balances[p]; !b.IsZero() {
			out = append(out, Residual{Participant: p, Balance: b.Round()})
		}
	}
	return out
}

func allZero(balances map[domain.Participant]money.Money) bool {
	for _, b := range balances {
		if !b.IsZero() {
			return false
		}
	}
	return true
}

// extremes scans the registry in ordinal order with strict comparisons, so
// exact ties resolve to the lowest ordinal.
func extremes(balances map[domain.Participant]money.Money) (debtor, creditor domain.Participant) {
	members := domain.All()
	debtor, creditor = members[0], members[0]
	for _, p := range members[1:] {
		if balances[p].Cmp(balances[debtor]) < 0 {
			debtor = p
		}
		if balances[p].Cmp(balances[creditor]) > 0 {
			creditor = p
		}
	}
	return debtor, creditor
}
