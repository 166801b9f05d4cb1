package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/splitledger/internal/domain"
	"github.com/dvloznov/splitledger/internal/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustTx(t *testing.T, amount, currency string, payer domain.Participant, beneficiaries []domain.Participant, shares []decimal.Decimal, desc string) domain.Transaction {
	t.Helper()
	tx, err := domain.NewTransaction(money.New(dec(amount), currency), payer, beneficiaries, shares, desc)
	if err != nil {
		t.Fatalf("NewTransaction failed: %v", err)
	}
	return tx
}

func usdRates() money.Rates {
	return money.NewRates("USD")
}

func TestAccumulate_UnevenSplit(t *testing.T) {
	// $90 by Nishant for Nishant/Steve/Joe split 50/25/25: Nishant is
	// credited 90 and debited his own 45, netting +45.
	tx := mustTx(t, "90", "USD", domain.Nishant,
		[]domain.Participant{domain.Nishant, domain.Steve, domain.Joe},
		[]decimal.Decimal{dec("0.5"), dec("0.25"), dec("0.25")}, "cabin")

	balances, err := Accumulate([]domain.Transaction{tx}, usdRates())
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}

	tests := []struct {
		participant domain.Participant
		want        string
	}{
		{participant: domain.Nishant, want: "45"},
		{participant: domain.Steve, want: "-22.5"},
		{participant: domain.Joe, want: "-22.5"},
		{participant: domain.Elton, want: "0"},
		{participant: domain.John, want: "0"},
		{participant: domain.Dim, want: "0"},
	}
	for _, tt := range tests {
		if got := balances[tt.participant]; got.Amount.String() != tt.want {
			t.Errorf("balance[%s] = %s, want %s", tt.participant, got.Amount, tt.want)
		}
	}
}

func TestAccumulate_EvenSplitDefault(t *testing.T) {
	tx := mustTx(t, "100", "USD", domain.Steve, nil, nil, "groceries")

	balances, err := Accumulate([]domain.Transaction{tx}, usdRates())
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}

	owedTotal := money.Zero("USD")
	for _, p := range domain.All() {
		if p == domain.Steve {
			continue
		}
		b := balances[p].Round()
		if b.Amount.String() != "-16.67" {
			t.Errorf("balance[%s] = %s, want -16.67", p, b.Amount)
		}
		owedTotal = owedTotal.Add(b)
	}

	// Five rounded shares of 16.67 total 83.35, within a cent of what the
	// payer is actually owed.
	if owedTotal.Amount.String() != "-83.35" {
		t.Errorf("total owed by non-payers = %s, want -83.35", owedTotal.Amount)
	}
}

func TestAccumulate_Conservation(t *testing.T) {
	txs := []domain.Transaction{
		mustTx(t, "100", "USD", domain.Steve, nil, nil, "groceries"),
		mustTx(t, "42.37", "USD", domain.Joe, []domain.Participant{domain.Joe, domain.Dim}, nil, "fuel"),
		mustTx(t, "90", "USD", domain.Nishant,
			[]domain.Participant{domain.Nishant, domain.Steve, domain.Joe},
			[]decimal.Decimal{dec("0.5"), dec("0.25"), dec("0.25")}, "cabin"),
		mustTx(t, "13.13", "USD", domain.Elton, []domain.Participant{domain.John}, nil, ""),
	}

	balances, err := Accumulate(txs, usdRates())
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}

	if total := Total(balances, "USD"); !total.IsZero() {
		t.Errorf("balances total %s, want zero within rounding", total.Amount)
	}
}

func TestAccumulate_ConvertsToBaseCurrency(t *testing.T) {
	rates := usdRates()
	rates.Table["EUR"] = dec("1.10")

	tx := mustTx(t, "10", "EUR", domain.Steve, []domain.Participant{domain.Joe}, nil, "museum")
	balances, err := Accumulate([]domain.Transaction{tx}, rates)
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}

	if got := balances[domain.Steve]; got.Currency != "USD" || got.Amount.String() != "11" {
		t.Errorf("balance[Steve] = %s %s, want USD 11", got.Currency, got.Amount)
	}
	if got := balances[domain.Joe]; got.Amount.String() != "-11" {
		t.Errorf("balance[Joe] = %s, want -11", got.Amount)
	}
}

func TestAccumulate_UnknownCurrency(t *testing.T) {
	tx := mustTx(t, "10", "JPY", domain.Steve, []domain.Participant{domain.Joe}, nil, "ramen")
	if _, err := Accumulate([]domain.Transaction{tx}, usdRates()); err == nil {
		t.Error("Accumulate succeeded with no rate for JPY, want error")
	}
}
