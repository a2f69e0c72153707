package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gemdocs/procurement-tracker/gen/ent"
	"github.com/gemdocs/procurement-tracker/internal/export"
	"github.com/gemdocs/procurement-tracker/internal/search"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/gemdocs/procurement-tracker/gen/proto/procurement/v1"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportContract(ctx context.Context, req *v1.ExportContractRequest) (*v1.ExportResponse, error) {
	contractNo := strings.TrimSpace(req.GetContractNo())
	if contractNo == "" {
		return nil, status.Error(codes.InvalidArgument, "contract_no is required")
	}
	format, err := exportFormat(req.GetFormat())
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case "xlsx":
		data, err = s.svc.ContractXLSX(ctx, contractNo)
	case "json":
		data, err = s.svc.ContractJSON(ctx, contractNo)
	}
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Errorf(codes.NotFound, "contract %s not found", contractNo)
		}
		s.logger.Error("export.contract.failed", "contract_no", contractNo, "err", err)
		return nil, status.Errorf(codes.Internal, "export contract: %v", err)
	}

	return &v1.ExportResponse{
		Data:     data,
		Filename: export.SafeFilename("contract-"+contractNo) + "." + format,
	}, nil
}

func (s *ExportServer) ExportContracts(ctx context.Context, req *v1.ExportContractsRequest) (*v1.ExportResponse, error) {
	fromDate, toDate, err := parseWindow(s.logger, req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	data, err := s.svc.ContractsXLSX(ctx, fromDate, toDate, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("export.contracts.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export contracts: %v", err)
	}
	return &v1.ExportResponse{Data: data, Filename: stampedName("contracts")}, nil
}

func (s *ExportServer) ExportBid(ctx context.Context, req *v1.ExportBidRequest) (*v1.ExportResponse, error) {
	bidNumber := strings.TrimSpace(req.GetBidNumber())
	if bidNumber == "" {
		return nil, status.Error(codes.InvalidArgument, "bid_number is required")
	}
	format, err := exportFormat(req.GetFormat())
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case "xlsx":
		data, err = s.svc.BidXLSX(ctx, bidNumber)
	case "json":
		data, err = s.svc.BidJSON(ctx, bidNumber)
	}
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Errorf(codes.NotFound, "bid %s not found", bidNumber)
		}
		s.logger.Error("export.bid.failed", "bid_number", bidNumber, "err", err)
		return nil, status.Errorf(codes.Internal, "export bid: %v", err)
	}

	return &v1.ExportResponse{
		Data:     data,
		Filename: export.SafeFilename("bid-"+bidNumber) + "." + format,
	}, nil
}

func (s *ExportServer) ExportBids(ctx context.Context, req *v1.ExportBidsRequest) (*v1.ExportResponse, error) {
	fromDate, toDate, err := parseWindow(s.logger, req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	data, err := s.svc.BidsXLSX(ctx, fromDate, toDate, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("export.bids.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export bids: %v", err)
	}
	return &v1.ExportResponse{Data: data, Filename: stampedName("bids")}, nil
}

func (s *ExportServer) ExportFilteredReport(ctx context.Context, req *v1.ExportFilteredReportRequest) (*v1.ExportResponse, error) {
	// empty keyword lists fall back to DefaultReportKeywords downstream
	keywords := search.ParseKeywords(req.GetKeywords())

	data, err := s.svc.FilteredReportXLSX(ctx, keywords, int(req.GetMinFields()))
	if err != nil {
		s.logger.Error("export.report.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export filtered report: %v", err)
	}
	return &v1.ExportResponse{Data: data, Filename: stampedName("filtered-report")}, nil
}

func exportFormat(f string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "", "xlsx":
		return "xlsx", nil
	case "json":
		return "json", nil
	}
	return "", status.Errorf(codes.InvalidArgument, "format %q must be xlsx or json", f)
}

func stampedName(prefix string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().UTC().Format("20060102-150405"))
}
