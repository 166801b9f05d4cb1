package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/splitledger/internal/money"
)

// Transaction records one payment made by Payer for the benefit of
// Beneficiaries, where Beneficiaries[i] owes Shares[i] of the amount.
// Immutable after construction; the settlement engine emits synthetic
// transactions of the same shape for the payments it proposes.
type Transaction struct {
	ID            string            // unique identifier, for logs and warnings
	Amount        money.Money       // what the payer fronted
	Payer         Participant       // who paid
	Beneficiaries []Participant     // who owes, unique, never empty
	Shares        []decimal.Decimal // fraction owed, aligned 1:1 with Beneficiaries
	Description   string            // optional free text
}

// NewTransaction builds a transaction, applying defaults: a nil beneficiary
// list means the whole registry, a nil share list means an even split.
// Shares are not required to sum to 1; callers who care should check.
func NewTransaction(amount money.Money, payer Participant, beneficiaries []Participant, shares []decimal.Decimal, description string) (Transaction, error) {
	if amount.Amount.Sign() <= 0 {
		return Transaction{}, fmt.Errorf("NewTransaction: amount must be positive, got %s", amount)
	}

	if beneficiaries == nil {
		beneficiaries = All()
	}
	if len(beneficiaries) == 0 {
		return Transaction{}, fmt.Errorf("NewTransaction: beneficiary list is empty")
	}
	seen := make(map[Participant]bool, len(beneficiaries))
	for _, b := range beneficiaries {
		if seen[b] {
			return Transaction{}, fmt.Errorf("NewTransaction: duplicate beneficiary %s", b)
		}
		seen[b] = true
	}

	if shares == nil {
		even := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(len(beneficiaries))))
		shares = make([]decimal.Decimal, len(beneficiaries))
		for i := range shares {
			shares[i] = even
		}
	}
	if len(shares) != len(beneficiaries) {
		return Transaction{}, fmt.Errorf("NewTransaction: %d shares for %d beneficiaries", len(shares), len(beneficiaries))
	}

	// Copy the slices so later caller mutations cannot reach the record.
	bs := make([]Participant, len(beneficiaries))
	copy(bs, beneficiaries)
	ss := make([]decimal.Decimal, len(shares))
	copy(ss, shares)

	return Transaction{
		ID:            uuid.New().String(),
		Amount:        amount,
		Payer:         payer,
		Beneficiaries: bs,
		Shares:        ss,
		Description:   description,
	}, nil
}

// Obligation reports p's position in this transaction: the full amount when
// p paid, minus their share when p benefited, zero when uninvolved. For a
// payer who is also a beneficiary only the payer amount is returned; the
// ledger applies their own-share debit separately during accumulation.
func (t Transaction) Obligation(p Participant) money.Money {
	if t.Payer == p {
		return t.Amount
	}
	for i, b := range t.Beneficiaries {
		if b == p {
			return t.Amount.Scale(t.Shares[i]).Neg()
		}
	}
	return money.Zero(t.Amount.Currency)
}

// Describe renders "<debtors> owe <payer> <amount> [for <description>]".
// The payer is left out of the debtor list and their own share is netted
// out of the amount, so a dinner the payer also ate at reads as what the
// others collectively owe.
func (t Transaction) Describe() string {
	debtors := make([]string, 0, len(t.Beneficiaries))
	owed := t.Amount
	for i, b := range t.Beneficiaries {
		if b == t.Payer {
			owed = t.Amount.Sub(t.Amount.Scale(t.Shares[i])).Round()
			continue
		}
		debtors = append(debtors, b.String())
	}

	verb := "owes"
	if len(debtors) > 1 {
		verb = "owe"
	}
	s := fmt.Sprintf("%s %s %s %s", strings.Join(debtors, " and "), verb, t.Payer, owed)
	if t.Description != "" {
		s += " for " + t.Description
	}
	return s
}

// Less orders transactions by amount alone, ascending. Display ordering
// only; amounts are compared as raw decimals.
func (t Transaction) Less(other Transaction) bool {
	return t.Amount.Cmp(other.Amount) < 0
}
