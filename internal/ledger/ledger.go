package ledger

import (
	"fmt"

	"github.com/dvloznov/splitledger/internal/domain"
	"github.com/dvloznov/splitledger/internal/money"
)

// Accumulate folds a batch of transactions into one net balance per
// registry member, expressed in the rate table's base currency. Positive
// means the group owes the participant, negative means they owe the group.
//
// The payer is credited the full amount and every beneficiary is debited
// share*amount directly. A payer who is also a beneficiary therefore nets
// amount*(1-share), matching what Describe reports the others owe them.
func Accumulate(txs []domain.Transaction, rates money.Rates) (map[domain.Participant]money.Money, error) {
	balances := make(map[domain.Participant]money.Money, domain.ParticipantCount)
	for _, p := range domain.All() {
		balances[p] = money.Zero(rates.Base)
	}

	for _, tx := range txs {
		amount, err := rates.Convert(tx.Amount)
		if err != nil {
			return nil, fmt.Errorf("Accumulate: transaction %s (%s): %w", tx.ID, tx.Description, err)
		}

		balances[tx.Payer] = balances[tx.Payer].Add(amount)
		for i, b := range tx.Beneficiaries {
			balances[b] = balances[b].Sub(amount.Scale(tx.Shares[i]))
		}
	}
	return balances, nil
}

// Total sums every balance. A conservative transaction set totals zero
// within rounding; anything else means credits and debits do not cancel.
func Total(balances map[domain.Participant]money.Money, base string) money.Money {
	total := money.Zero(base)
	for _, b := range balances {
		total = total.Add(b)
	}
	return total
}
