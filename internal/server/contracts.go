package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/gen/ent"
	"github.com/gemdocs/procurement-tracker/internal/extract"
	"github.com/gemdocs/procurement-tracker/internal/pdftext"
	"github.com/gemdocs/procurement-tracker/internal/repository"
	"github.com/gemdocs/procurement-tracker/internal/textclean"
	"github.com/gemdocs/procurement-tracker/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	procurementpb "github.com/gemdocs/procurement-tracker/gen/proto/procurement/v1"
)

type ContractsService struct {
	procurementpb.UnimplementedContractsServiceServer
	contractRepo repository.ContractRepository
	extractor    pdftext.Extractor
	logger       *slog.Logger
}

func NewContractsService(contractRepo repository.ContractRepository, extractor pdftext.Extractor, logger *slog.Logger) *ContractsService {
	return &ContractsService{
		contractRepo: contractRepo,
		extractor:    extractor,
		logger:       logger,
	}
}

func (s *ContractsService) ListContracts(ctx context.Context, req *procurementpb.ListContractsRequest) (*procurementpb.ListContractsResponse, error) {
	fromDate, toDate, err := parseWindow(s.logger, req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing contracts", "from_date", fromDate, "to_date", toDate)
	recs, err := s.contractRepo.List(ctx, fromDate, toDate, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list contracts", "error", err)
		return nil, status.Errorf(codes.Internal, "list contracts: %v", err)
	}
	s.logger.Info("contracts listed successfully", "count", len(recs))

	out := make([]*procurementpb.Contract, 0, len(recs))
	for _, c := range recs {
		out = append(out, utils.ToPBContract(c))
	}
	return &procurementpb.ListContractsResponse{Contracts: out}, nil
}

func (s *ContractsService) GetContract(ctx context.Context, req *procurementpb.GetContractRequest) (*procurementpb.GetContractResponse, error) {
	contractNo := strings.TrimSpace(req.GetContractNo())
	if contractNo == "" {
		s.logger.Error("get contract request missing contract_no")
		return nil, status.Error(codes.InvalidArgument, "contract_no is required")
	}

	rec, err := s.contractRepo.GetByContractNo(ctx, contractNo)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Errorf(codes.NotFound, "contract %s not found", contractNo)
		}
		s.logger.Error("failed to get contract", "contract_no", contractNo, "error", err)
		return nil, status.Errorf(codes.Internal, "get contract: %v", err)
	}
	return &procurementpb.GetContractResponse{Record: utils.ToPBContractRecord(rec)}, nil
}

// ImportParsed validates an externally produced fields document and saves it
// through the same upsert path the pipeline uses.
func (s *ContractsService) ImportParsed(ctx context.Context, req *procurementpb.ImportParsedRequest) (*procurementpb.ImportParsedResponse, error) {
	raw := req.GetFieldsJson()
	if len(raw) == 0 {
		s.logger.Error("import request missing fields_json")
		return nil, status.Error(codes.InvalidArgument, "fields_json is required")
	}
	if err := extract.ValidateAgainstSchema(extract.BuildContractJSONSchema(), raw); err != nil {
		s.logger.Error("contract import failed validation", "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "fields_json: %v", err)
	}
	var fields extract.ContractFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "fields_json: %v", err)
	}
	if strings.TrimSpace(fields.ContractNo) == "" {
		return nil, status.Error(codes.InvalidArgument, "contract_no is required")
	}

	contract, deduplicated, err := s.contractRepo.UpsertFromFields(ctx, &repository.SaveContractRequest{
		Fields:  fields,
		RawText: req.GetRawText(),
	})
	if err != nil {
		s.logger.Error("failed to import contract", "contract_no", fields.ContractNo, "error", err)
		return nil, status.Errorf(codes.Internal, "save contract: %v", err)
	}
	s.logger.Info("contract imported", "contract_no", contract.ContractNo, "deduplicated", deduplicated)

	return &procurementpb.ImportParsedResponse{
		Id:           contract.ID.String(),
		NaturalKey:   contract.ContractNo,
		Deduplicated: deduplicated,
	}, nil
}

// ParsePreview runs text extraction and the contract field chains against a
// document on disk without writing anything.
func (s *ContractsService) ParsePreview(ctx context.Context, req *procurementpb.ParsePreviewRequest) (*procurementpb.ParsePreviewResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("parse preview request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	res, err := s.extractor.Extract(ctx, path)
	if err != nil {
		s.logger.Error("preview extraction failed", "path", path, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "extract: %v", err)
	}
	text := textclean.CleanText(res.Text)
	fields := extract.ExtractContract(text)

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal fields: %v", err)
	}
	needsReview := fields.ContractNo == ""
	if err := extract.ValidateAgainstSchema(extract.BuildContractJSONSchema(), raw); err != nil {
		needsReview = true
	}
	if fields.GeneratedDate == "" || fields.Organisation.Ministry == "" || len(fields.Products) == 0 {
		needsReview = true
	}

	return &procurementpb.ParsePreviewResponse{
		DocType:     string(constants.DocTypeContract),
		FieldsJson:  raw,
		NeedsReview: needsReview,
	}, nil
}

// parseWindow turns optional YYYY-MM-DD bounds into time pointers.
func parseWindow(logger *slog.Logger, from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &t
	}
	return fromDate, toDate, nil
}
