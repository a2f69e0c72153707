package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

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

type BidsService struct {
	procurementpb.UnimplementedBidsServiceServer
	bidRepo   repository.BidRepository
	extractor pdftext.Extractor
	logger    *slog.Logger
}

func NewBidsService(bidRepo repository.BidRepository, extractor pdftext.Extractor, logger *slog.Logger) *BidsService {
	return &BidsService{
		bidRepo:   bidRepo,
		extractor: extractor,
		logger:    logger,
	}
}

func (s *BidsService) ListBids(ctx context.Context, req *procurementpb.ListBidsRequest) (*procurementpb.ListBidsResponse, error) {
	fromDate, toDate, err := parseWindow(s.logger, req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing bids", "from_date", fromDate, "to_date", toDate)
	bids, err := s.bidRepo.List(ctx, fromDate, toDate, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list bids", "error", err)
		return nil, status.Errorf(codes.Internal, "list bids: %v", err)
	}
	s.logger.Info("bids listed successfully", "count", len(bids))

	out := make([]*procurementpb.Bid, 0, len(bids))
	for _, b := range bids {
		out = append(out, utils.ToPBBid(b))
	}
	return &procurementpb.ListBidsResponse{Bids: out}, nil
}

func (s *BidsService) GetBid(ctx context.Context, req *procurementpb.GetBidRequest) (*procurementpb.GetBidResponse, error) {
	bidNumber := strings.TrimSpace(req.GetBidNumber())
	if bidNumber == "" {
		s.logger.Error("get bid request missing bid_number")
		return nil, status.Error(codes.InvalidArgument, "bid_number is required")
	}

	bid, err := s.bidRepo.GetByBidNumber(ctx, bidNumber)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Errorf(codes.NotFound, "bid %s not found", bidNumber)
		}
		s.logger.Error("failed to get bid", "bid_number", bidNumber, "error", err)
		return nil, status.Errorf(codes.Internal, "get bid: %v", err)
	}
	return &procurementpb.GetBidResponse{Bid: utils.ToPBBid(bid)}, nil
}

// ImportParsed validates an externally produced fields document and saves it
// through the same upsert path the pipeline uses.
func (s *BidsService) ImportParsed(ctx context.Context, req *procurementpb.ImportParsedRequest) (*procurementpb.ImportParsedResponse, error) {
	raw := req.GetFieldsJson()
	if len(raw) == 0 {
		s.logger.Error("import request missing fields_json")
		return nil, status.Error(codes.InvalidArgument, "fields_json is required")
	}
	if err := extract.ValidateAgainstSchema(extract.BuildBidJSONSchema(), raw); err != nil {
		s.logger.Error("bid import failed validation", "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "fields_json: %v", err)
	}
	var fields extract.BidFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "fields_json: %v", err)
	}
	if strings.TrimSpace(fields.BidNumber) == "" {
		return nil, status.Error(codes.InvalidArgument, "bid_number is required")
	}

	bid, deduplicated, err := s.bidRepo.UpsertFromFields(ctx, &repository.SaveBidRequest{
		Fields:  fields,
		RawText: req.GetRawText(),
	})
	if err != nil {
		s.logger.Error("failed to import bid", "bid_number", fields.BidNumber, "error", err)
		return nil, status.Errorf(codes.Internal, "save bid: %v", err)
	}
	s.logger.Info("bid imported", "bid_number", bid.BidNumber, "deduplicated", deduplicated)

	return &procurementpb.ImportParsedResponse{
		Id:           bid.ID.String(),
		NaturalKey:   bid.BidNumber,
		Deduplicated: deduplicated,
	}, nil
}

// ParsePreview runs text extraction and the bid field chains against a
// document on disk without writing anything.
func (s *BidsService) ParsePreview(ctx context.Context, req *procurementpb.ParsePreviewRequest) (*procurementpb.ParsePreviewResponse, error) {
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
	fields := extract.ExtractBid(text)
	fields.SourceFile = filepath.Base(path)

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal fields: %v", err)
	}
	needsReview := fields.BidNumber == ""
	if err := extract.ValidateAgainstSchema(extract.BuildBidJSONSchema(), raw); err != nil {
		needsReview = true
	}
	if fields.Dated == "" || fields.ItemCategory == "" {
		needsReview = true
	}

	return &procurementpb.ParsePreviewResponse{
		DocType:     string(constants.DocTypeBid),
		FieldsJson:  raw,
		NeedsReview: needsReview,
	}, nil
}
