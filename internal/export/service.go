package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gemdocs/procurement-tracker/internal/repository"
	"github.com/gemdocs/procurement-tracker/internal/search"
)

// Service is a tiny façade over repositories that produces export bytes.
// Writing those bytes to disk or a response is the caller's concern.
type Service struct {
	contracts repository.ContractRepository
	bids      repository.BidRepository
	searcher  *search.Service
	logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, bids repository.BidRepository, searcher *search.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contracts: contracts, bids: bids, searcher: searcher, logger: logger}
}

// ContractXLSX renders a single contract as a workbook with one sheet per
// document section, in the order the sections appear on the contract.
func (s *Service) ContractXLSX(ctx context.Context, contractNo string) ([]byte, error) {
	start := time.Now()

	rec, err := s.contracts.GetByContractNo(ctx, contractNo)
	if err != nil {
		return nil, fmt.Errorf("load contract: %w", err)
	}
	f, err := buildContractWorkbook(rec)
	if err != nil {
		return nil, err
	}
	out, err := finalize(f, "Contract")
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"contract_no", contractNo,
		"bytes", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ContractsXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all contracts.
func (s *Service) ContractsXLSX(ctx context.Context, from, to *time.Time, limit, offset int) ([]byte, error) {
	start := time.Now()
	fromDate, toDate := normalizeWindow(from, to)

	recs, err := s.contracts.ListRecords(ctx, fromDate, toDate, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}

	f := excelize.NewFile()
	if err := writeContractsSheet(f, recs); err != nil {
		return nil, err
	}
	out, err := finalize(f, "Contracts")
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"bytes", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// BidXLSX renders a single bid as a two-column Field/Value sheet.
func (s *Service) BidXLSX(ctx context.Context, bidNumber string) ([]byte, error) {
	start := time.Now()

	bid, err := s.bids.GetByBidNumber(ctx, bidNumber)
	if err != nil {
		return nil, fmt.Errorf("load bid: %w", err)
	}
	f, err := buildBidWorkbook(bid)
	if err != nil {
		return nil, err
	}
	out, err := finalize(f, "Bid")
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"bid_number", bidNumber,
		"bytes", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// BidsXLSX returns an XLSX workbook (as bytes) for the given date window,
// with the same window semantics as ContractsXLSX.
func (s *Service) BidsXLSX(ctx context.Context, from, to *time.Time, limit, offset int) ([]byte, error) {
	start := time.Now()
	fromDate, toDate := normalizeWindow(from, to)

	bids, err := s.bids.List(ctx, fromDate, toDate, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query bids: %w", err)
	}

	f := excelize.NewFile()
	if err := writeBidsSheet(f, bids); err != nil {
		return nil, err
	}
	out, err := finalize(f, "Bids")
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(bids),
		"bytes", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ContractJSON renders the full contract record, satellites included, as
// indented JSON.
func (s *Service) ContractJSON(ctx context.Context, contractNo string) ([]byte, error) {
	rec, err := s.contracts.GetByContractNo(ctx, contractNo)
	if err != nil {
		return nil, fmt.Errorf("load contract: %w", err)
	}
	return json.MarshalIndent(rec, "", "  ")
}

// BidJSON renders the bid row as indented JSON.
func (s *Service) BidJSON(ctx context.Context, bidNumber string) ([]byte, error) {
	bid, err := s.bids.GetByBidNumber(ctx, bidNumber)
	if err != nil {
		return nil, fmt.Errorf("load bid: %w", err)
	}
	return json.MarshalIndent(bid, "", "  ")
}

// FilteredReportXLSX runs a keyword search across contracts and bids and
// renders the hits as a report workbook. Empty keywords fall back to
// DefaultReportKeywords.
func (s *Service) FilteredReportXLSX(ctx context.Context, keywords []string, minFields int) ([]byte, error) {
	start := time.Now()
	if len(keywords) == 0 {
		keywords = DefaultReportKeywords
	}

	results, err := s.searcher.Keyword(ctx, keywords, minFields, "")
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}

	f, err := buildReportWorkbook(keywords, minFields, results)
	if err != nil {
		return nil, err
	}
	out, err := finalize(f, "Summary")
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.report.ok",
		"keywords", len(keywords),
		"contracts", len(results.Contracts),
		"bids", len(results.Bids),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// normalizeWindow clamps both bounds to date-only UTC; a lower bound with
// no upper bound closes the window at today.
func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}
