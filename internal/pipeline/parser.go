package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/splitledger/internal/domain"
	"github.com/dvloznov/splitledger/internal/money"
)

// Expense lines are whitespace separated:
//
//	<amount> <currency> <payer> "<description>" [beneficiaries] [shares]
//
// Beneficiaries are a comma-separated list of participant names (default:
// everyone); shares are a comma-separated list of decimals or a/b
// fractions aligned with the beneficiaries (default: an even split).
var lineRE = regexp.MustCompile(`^([0-9.]+)\s+(\S+)\s+(\S+)\s+"(.*)"\s*([A-Za-z]+(?:\s*,\s*[A-Za-z]+)*)?\s*([0-9./]+(?:\s*,\s*[0-9./]+)*)?\s*$`)

// ParseLine parses one expense line into a Transaction. Any failure
// (unmatched grammar, bad amount, unknown participant, mismatched share
// list) is returned as an error for the caller to report and skip.
func ParseLine(line string) (domain.Transaction, error) {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.Transaction{}, fmt.Errorf("ParseLine: line does not match the expense grammar")
	}

	amount, err := decimal.NewFromString(m[1])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("ParseLine: amount %q: %w", m[1], err)
	}
	currency := strings.ToUpper(m[2])

	payer, err := domain.ParseParticipant(m[3])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("ParseLine: payer: %w", err)
	}

	var beneficiaries []domain.Participant
	if m[5] != "" {
		for _, name := range strings.Split(m[5], ",") {
			p, err := domain.ParseParticipant(strings.TrimSpace(name))
			if err != nil {
				return domain.Transaction{}, fmt.Errorf("ParseLine: beneficiary: %w", err)
			}
			beneficiaries = append(beneficiaries, p)
		}
	}

	var shares []decimal.Decimal
	if m[6] != "" {
		for _, raw := range strings.Split(m[6], ",") {
			s, err := parseShare(strings.TrimSpace(raw))
			if err != nil {
				return domain.Transaction{}, fmt.Errorf("ParseLine: share: %w", err)
			}
			shares = append(shares, s)
		}
	}

	return domain.NewTransaction(money.New(amount, currency), payer, beneficiaries, shares, m[4])
}

// parseShare accepts a plain decimal ("0.25") or an a/b fraction ("1/4"),
// dividing exactly so thirds and sixths keep their precision.
func parseShare(raw string) (decimal.Decimal, error) {
	if num, den, ok := strings.Cut(raw, "/"); ok {
		n, err := decimal.NewFromString(num)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parseShare: numerator %q: %w", num, err)
		}
		d, err := decimal.NewFromString(den)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parseShare: denominator %q: %w", den, err)
		}
		if d.IsZero() {
			return decimal.Zero, fmt.Errorf("parseShare: zero denominator in %q", raw)
		}
		return n.Div(d), nil
	}
	return decimal.NewFromString(raw)
}
