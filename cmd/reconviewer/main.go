package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"reconviewer/internal/analytics"
	"reconviewer/internal/domain"
	"reconviewer/internal/export"
	"reconviewer/internal/gateway"
	"reconviewer/internal/review"
	"reconviewer/internal/usecase"
)

func main() {
	// Define command-line flags
	bankFile := flag.String("bank", "", "Path to the bank statement document (required)")
	ledgerFile := flag.String("ledger", "", "Path to the general ledger document (required)")
	dateStr := flag.String("date", "", "As-of date for the reconciliation (YYYY-MM-DD) (required)")
	modeStr := flag.String("mode", string(domain.ModeFast), "Processing mode: fast or precise")
	company := flag.String("company", "", "Company display name used in artifact labels (optional)")
	outDir := flag.String("out", ".", "Directory to write export artifacts into")
	endpoint := flag.String("endpoint", os.Getenv("CLASSIFIER_ENDPOINT"), "Classification service endpoint (or CLASSIFIER_ENDPOINT env var)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Validate required flags
	if *bankFile == "" || *ledgerFile == "" || *dateStr == "" {
		fmt.Println("Error: flags -bank, -ledger and -date are required.")
		flag.Usage()
		os.Exit(1)
	}
	if *endpoint == "" {
		fmt.Println("Error: no classification endpoint configured (use -endpoint or CLASSIFIER_ENDPOINT).")
		os.Exit(1)
	}
	if _, err := time.Parse("2006-01-02", *dateStr); err != nil {
		logger.Fatal("invalid as-of date", zap.String("date", *dateStr), zap.Error(err))
	}
	mode := domain.Mode(*modeStr)
	if !mode.IsValid() {
		logger.Fatal("invalid processing mode", zap.String("mode", *modeStr))
	}

	// --- Dependency Injection (Wiring the application) ---
	classifier := gateway.NewClassifierClient(*endpoint, logger)
	reconciliationUseCase := usecase.NewReconciliationUseCase(classifier, logger)

	bankDoc, err := gateway.ReadDocument(*bankFile)
	if err != nil {
		logger.Fatal("could not read bank statement", zap.Error(err))
	}
	ledgerDoc, err := gateway.ReadDocument(*ledgerFile)
	if err != nil {
		logger.Fatal("could not read ledger document", zap.Error(err))
	}

	// --- Execute the pipeline ---
	result, err := reconciliationUseCase.Reconcile(context.Background(), bankDoc, ledgerDoc, *dateStr, mode)
	if err != nil {
		logger.Fatal("reconciliation attempt failed", zap.Error(err))
	}

	// A fresh result gets a fresh, empty review session.
	session := review.NewManager(result)
	logger.Info("review session started", zap.String("sessionID", session.SessionID()))

	printDashboard(result)

	// --- Write export artifacts ---
	now := time.Now()
	writeArtifact(logger, *outDir, export.Filename(*company, now, "csv"),
		[]byte(export.ToDelimitedText(result, *company, now)))

	cfg := domain.FullExportConfig()
	pdfBytes, err := export.ToPDF(result, *company, cfg,
		session.SelectionSnapshot(review.CollectionBank),
		session.SelectionSnapshot(review.CollectionLedger), now)
	if err != nil {
		logger.Fatal("could not generate PDF artifact", zap.Error(err))
	}
	writeArtifact(logger, *outDir, export.Filename(*company, now, "pdf"), pdfBytes)

	xlsxBytes, err := export.ToXLSX(result, *company, cfg,
		session.SelectionSnapshot(review.CollectionBank),
		session.SelectionSnapshot(review.CollectionLedger))
	if err != nil {
		logger.Fatal("could not generate spreadsheet artifact", zap.Error(err))
	}
	writeArtifact(logger, *outDir, export.Filename(*company, now, "xlsx"), xlsxBytes)
}

func printDashboard(result *domain.ReconciliationResult) {
	s := result.Summary
	fmt.Printf("Reconciliation as at %s\n", s.AsAtDate)
	fmt.Printf("  Bank balance:   %s\n", domain.FormatCurrency(s.BankBalance))
	fmt.Printf("  Ledger balance: %s\n", domain.FormatCurrency(s.LedgerBalance))
	fmt.Printf("  Matched:        %d (%s)\n", s.MatchedCount, domain.FormatCurrency(s.MatchedTotal))
	fmt.Printf("  Unmatched bank: %d (%s)\n", s.UnmatchedBankCount, domain.FormatCurrency(s.UnmatchedBankTotal))
	fmt.Printf("  Unmatched ledger: %d (%s)\n", s.UnmatchedLedgerCount, domain.FormatCurrency(s.UnmatchedLedgerTotal))

	variance := analytics.CheckVariance(result)
	fmt.Printf("  Variance:       %s (%s)\n", domain.FormatCurrency(variance.Amount), variance.Status)

	outliers := analytics.TopOutliers(result, analytics.DefaultOutlierCount)
	if len(outliers) > 0 {
		fmt.Println("Largest unmatched items:")
		for _, o := range outliers {
			fmt.Printf("  [%s] %s  %s  %s\n", o.Source, o.Transaction.Date, o.Transaction.Description, domain.FormatCurrency(o.Transaction.Amount))
		}
	}
}

func writeArtifact(logger *zap.Logger, dir, name string, content []byte) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		logger.Fatal("could not write artifact", zap.String("path", path), zap.Error(err))
	}
	logger.Info("artifact written", zap.String("path", path), zap.Int("bytes", len(content)))
}
