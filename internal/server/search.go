package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gemdocs/procurement-tracker/internal/search"
	"github.com/gemdocs/procurement-tracker/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	procurementpb "github.com/gemdocs/procurement-tracker/gen/proto/procurement/v1"
)

type SearchService struct {
	procurementpb.UnimplementedSearchServiceServer
	searcher *search.Service
	logger   *slog.Logger
}

func NewSearchService(searcher *search.Service, logger *slog.Logger) *SearchService {
	return &SearchService{
		searcher: searcher,
		logger:   logger,
	}
}

func (s *SearchService) KeywordSearch(ctx context.Context, req *procurementpb.KeywordSearchRequest) (*procurementpb.KeywordSearchResponse, error) {
	keywords := search.ParseKeywords(req.GetKeywords())
	if len(keywords) == 0 {
		s.logger.Error("keyword search request missing keywords")
		return nil, status.Error(codes.InvalidArgument, "keywords is required")
	}
	kind, ok := search.ParseKind(req.GetKind())
	if !ok || kind == search.KindProduct {
		s.logger.Error("invalid kind for keyword search", "kind", req.GetKind())
		return nil, status.Error(codes.InvalidArgument, "kind must be contract, bid or empty")
	}

	results, err := s.searcher.Keyword(ctx, keywords, int(req.GetMinFields()), kind)
	if err != nil {
		s.logger.Error("keyword search failed", "error", err)
		return nil, status.Errorf(codes.Internal, "keyword search: %v", err)
	}

	out := &procurementpb.KeywordSearchResponse{
		Contracts: make([]*procurementpb.ContractRecord, 0, len(results.Contracts)),
		Bids:      make([]*procurementpb.Bid, 0, len(results.Bids)),
	}
	for _, rec := range results.Contracts {
		out.Contracts = append(out.Contracts, utils.ToPBContractRecord(rec))
	}
	for _, b := range results.Bids {
		out.Bids = append(out.Bids, utils.ToPBBid(b))
	}
	return out, nil
}

func (s *SearchService) SemanticSearch(ctx context.Context, req *procurementpb.SemanticSearchRequest) (*procurementpb.SemanticSearchResponse, error) {
	query := strings.TrimSpace(req.GetQuery())
	if query == "" {
		s.logger.Error("semantic search request missing query")
		return nil, status.Error(codes.InvalidArgument, "query is required")
	}
	topK := int(req.GetTopK())
	if topK <= 0 {
		topK = 10
	}

	var kinds []search.Kind
	for _, k := range req.GetKinds() {
		if strings.TrimSpace(k) == "" {
			continue
		}
		kind, ok := search.ParseKind(k)
		if !ok {
			s.logger.Error("invalid kind for semantic search", "kind", k)
			return nil, status.Errorf(codes.InvalidArgument, "kind %q must be contract, product or bid", k)
		}
		kinds = append(kinds, kind)
	}

	hits, err := s.searcher.Semantic(ctx, query, topK, kinds...)
	if err != nil {
		s.logger.Error("semantic search failed", "error", err)
		return nil, status.Errorf(codes.Internal, "semantic search: %v", err)
	}
	s.logger.Info("semantic search completed", "query_len", len(query), "hits", len(hits))

	out := make([]*procurementpb.SemanticHit, 0, len(hits))
	for _, h := range hits {
		out = append(out, &procurementpb.SemanticHit{
			Id:    h.ID.String(),
			Kind:  string(h.Kind),
			Ref:   h.Ref,
			Score: h.Score,
		})
	}
	return &procurementpb.SemanticSearchResponse{Hits: out}, nil
}
