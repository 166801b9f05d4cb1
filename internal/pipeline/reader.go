package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dvloznov/splitledger/internal/domain"
	"github.com/dvloznov/splitledger/internal/logger"
)

// ReadExpenses parses expense lines from r. Lines that fail to parse are
// logged with their position in name and skipped; processing continues
// with the rest of the input. Blank lines and lines starting with '#' are
// ignored.
func ReadExpenses(ctx context.Context, r io.Reader, name string) ([]domain.Transaction, error) {
	log := logger.FromContext(ctx)

	var txs []domain.Transaction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tx, err := ParseLine(line)
		if err != nil {
			log.Warn().
				Str("source", name).
				Int("line", lineNo).
				Err(err).
				Msg("Skipping unparseable expense line")
			continue
		}

		if sum, ok := CheckShareSum(tx); !ok {
			log.Warn().
				Str("source", name).
				Int("line", lineNo).
				Str("transaction_id", tx.ID).
				Str("share_sum", sum.String()).
				Msg("Shares do not sum to 1; accepting the transaction as written")
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return txs, fmt.Errorf("ReadExpenses: %s: %w", name, err)
	}
	return txs, nil
}

// ReadExpenseFiles reads every path in order and concatenates the results.
// A file that cannot be opened is an error; a line that cannot be parsed
// is not.
func ReadExpenseFiles(ctx context.Context, paths []string) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return txs, fmt.Errorf("ReadExpenseFiles: %w", err)
		}
		fileTxs, err := ReadExpenses(ctx, f, path)
		f.Close()
		if err != nil {
			return txs, err
		}
		txs = append(txs, fileTxs...)
	}
	return txs, nil
}
