package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/dvloznov/splitledger/internal/config"
	"github.com/dvloznov/splitledger/internal/domain"
	"github.com/dvloznov/splitledger/internal/ledger"
	"github.com/dvloznov/splitledger/internal/logger"
	"github.com/dvloznov/splitledger/internal/money"
	"github.com/dvloznov/splitledger/internal/pipeline"
	"github.com/dvloznov/splitledger/internal/settle"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "settle":
		runSettle(log)
	case "balances":
		runBalances(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("splitledger CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options] [files...]")
	fmt.Println("\nCommands:")
	fmt.Println("  settle    Read expense files and print the payments that settle them")
	fmt.Println("  balances  Read expense files and print each person's net balance")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nExpense lines look like:")
	fmt.Println(`  45.00 USD steve "group dinner" joe,elton 0.5,0.5`)
	fmt.Println("\nWith no files, lines are read from stdin.")
}

func runSettle(log zerolog.Logger) {
	fs := flag.NewFlagSet("settle", flag.ExitOnError)
	sortHistory := fs.Bool("sort", false, "sort the transaction history by amount")
	ratesFile := fs.String("rates", "", "path to a YAML exchange-rate table (overrides RATES_FILE)")
	fs.Parse(os.Args[2:])

	ctx := logger.WithContext(context.Background(), log)

	txs, rates := loadInput(ctx, log, fs.Args(), *ratesFile)
	balances, err := ledger.Accumulate(txs, rates)
	if err != nil {
		log.Fatal().Err(err).Msg("Accumulating balances failed")
	}

	payments, err := settle.Settle(balances)
	if err != nil {
		if errors.Is(err, settle.ErrUnbalancedLedger) {
			log.Fatal().Err(err).Msg("Settlement failed: the ledger does not balance. This is an internal inconsistency, not bad input")
		}
		log.Fatal().Err(err).Msg("Settlement failed")
	}

	if *sortHistory {
		sort.Slice(txs, func(i, j int) bool { return txs[i].Less(txs[j]) })
	}

	fmt.Println("\nTO SETTLE THESE TRANSACTIONS...")
	for _, tx := range txs {
		fmt.Println(tx.Describe())
	}
	fmt.Println("...MAKE THESE PAYMENTS:")
	for _, p := range payments {
		fmt.Println(p.Describe())
	}

	for _, r := range settle.Residuals(balances) {
		fmt.Printf("SOMETHING'S WRONG: %s has outstanding balance %s\n", r.Participant, r.Balance)
	}
}

func runBalances(log zerolog.Logger) {
	fs := flag.NewFlagSet("balances", flag.ExitOnError)
	ratesFile := fs.String("rates", "", "path to a YAML exchange-rate table (overrides RATES_FILE)")
	fs.Parse(os.Args[2:])

	ctx := logger.WithContext(context.Background(), log)

	txs, rates := loadInput(ctx, log, fs.Args(), *ratesFile)
	balances, err := ledger.Accumulate(txs, rates)
	if err != nil {
		log.Fatal().Err(err).Msg("Accumulating balances failed")
	}

	fmt.Println("\nNET BALANCES (positive = owed to them):")
	for _, p := range domain.All() {
		fmt.Printf("  %-8s %s\n", p, balances[p].Round())
	}
	if total := ledger.Total(balances, rates.Base); !total.IsZero() {
		fmt.Printf("WARNING: balances total %s, expected zero\n", total)
	}
}

// loadInput reads transactions from the given files (or stdin when none
// are given) and builds the exchange-rate table.
func loadInput(ctx context.Context, log zerolog.Logger, files []string, ratesFile string) ([]domain.Transaction, money.Rates) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading configuration failed")
	}
	if ratesFile != "" {
		cfg.RatesFile = ratesFile
	}
	rates, err := cfg.Rates()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading exchange rates failed")
	}

	var txs []domain.Transaction
	if len(files) == 0 {
		txs, err = pipeline.ReadExpenses(ctx, os.Stdin, "stdin")
		if err != nil {
			log.Fatal().Err(err).Msg("Reading expenses from stdin failed")
		}
	} else {
		txs, err = pipeline.ReadExpenseFiles(ctx, files)
		if err != nil {
			log.Fatal().Err(err).Msg("Reading expense files failed")
		}
	}
	if len(txs) == 0 {
		log.Warn().Msg("No transactions parsed; nothing to settle")
	}
	return txs, rates
}
