package utils

import (
	"time"

	"github.com/gemdocs/procurement-tracker/gen/ent"
	procurementpb "github.com/gemdocs/procurement-tracker/gen/proto/procurement/v1"
	"github.com/gemdocs/procurement-tracker/internal/entity"
)

// ParseYMD parses a YYYY-MM-DD string at midnight UTC to match DATE
// column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToSourceFile(e *ent.SourceFile) *entity.SourceFile {
	return &entity.SourceFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		DocType:     e.DocType,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:            e.ID,
		FileID:        e.FileID,
		ContractID:    e.ContractID,
		BidID:         e.BidID,
		Format:        e.Format,
		DocType:       e.DocType,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		NeedsReview:   e.NeedsReview,
		RawText:       e.RawText,
		ExtractedJSON: e.ExtractedJSON,
		Method:        e.Method,
	}
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:            e.ID,
		ContractNo:    e.ContractNo,
		GeneratedDate: e.GeneratedDate,
		RawText:       e.RawText,
		HasEmbedding:  len(e.Embedding) > 0,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToContractRecord maps a contract plus whatever edges were eager-loaded.
// Blocks that were not loaded (or never extracted) stay nil.
func ToContractRecord(e *ent.Contract) *entity.ContractRecord {
	rec := &entity.ContractRecord{Contract: *ToContract(e)}

	if org := e.Edges.Organisation; org != nil {
		rec.Organisation = &entity.OrganisationDetail{
			Type:             org.Type,
			Ministry:         org.Ministry,
			Department:       org.Department,
			OrganisationName: org.OrganisationName,
			OfficeZone:       org.OfficeZone,
		}
	}
	if b := e.Edges.Buyer; b != nil {
		rec.Buyer = &entity.BuyerDetail{
			Designation: b.Designation,
			ContactNo:   b.ContactNo,
			Email:       b.Email,
			GSTIN:       b.Gstin,
			Address:     b.Address,
		}
	}
	if fa := e.Edges.FinancialApproval; fa != nil {
		rec.FinancialApproval = &entity.FinancialApproval{
			IFDConcurrence:               fa.IfdConcurrence,
			AdminApprovalDesignation:     fa.AdminApprovalDesignation,
			FinancialApprovalDesignation: fa.FinancialApprovalDesignation,
		}
	}
	if pa := e.Edges.PayingAuthority; pa != nil {
		rec.PayingAuthority = &entity.PayingAuthority{
			Role:        pa.Role,
			PaymentMode: pa.PaymentMode,
			Designation: pa.Designation,
			Email:       pa.Email,
			GSTIN:       pa.Gstin,
			Address:     pa.Address,
		}
	}
	if s := e.Edges.Seller; s != nil {
		rec.Seller = &entity.SellerDetail{
			GeMSellerID:            s.GemSellerID,
			CompanyName:            s.CompanyName,
			ContactNo:              s.ContactNo,
			Email:                  s.Email,
			Address:                s.Address,
			MSMERegistrationNumber: s.MsmeRegistrationNumber,
			GSTIN:                  s.Gstin,
		}
	}
	if ep := e.Edges.Epbg; ep != nil {
		rec.EPBGDetail = ep.Detail
	}
	for _, p := range e.Edges.Products {
		rec.Products = append(rec.Products, ToProduct(p))
	}
	for _, tc := range e.Edges.Terms {
		rec.Terms = append(rec.Terms, tc.ClauseText)
	}
	return rec
}

func ToProduct(p *ent.Product) entity.Product {
	out := entity.Product{
		ID:                   p.ID,
		ProductName:          p.ProductName,
		Brand:                p.Brand,
		BrandType:            p.BrandType,
		CatalogueStatus:      p.CatalogueStatus,
		SellingAs:            p.SellingAs,
		CategoryNameQuadrant: p.CategoryNameQuadrant,
		Model:                p.Model,
		HSNCode:              p.HsnCode,
		OrderedQuantity:      p.OrderedQuantity,
		Unit:                 p.Unit,
		UnitPrice:            p.UnitPrice,
		TaxBifurcation:       p.TaxBifurcation,
		TotalPrice:           p.TotalPrice,
		Note:                 p.Note,
	}
	for _, s := range p.Edges.Specifications {
		out.Specifications = append(out.Specifications, entity.ProductSpecification{
			Category: s.Category,
			SubSpec:  s.SubSpec,
			Value:    s.Value,
		})
	}
	for _, c := range p.Edges.Consignees {
		out.Consignees = append(out.Consignees, entity.ConsigneeDetail{
			SNo:           c.SNo,
			Designation:   c.Designation,
			Email:         c.Email,
			Contact:       c.Contact,
			GSTIN:         c.Gstin,
			Address:       c.Address,
			LotNo:         c.LotNo,
			Quantity:      c.Quantity,
			DeliveryStart: c.DeliveryStart,
			DeliveryEnd:   c.DeliveryEnd,
			DeliveryTo:    c.DeliveryTo,
		})
	}
	return out
}

func ToBid(e *ent.Bid) *entity.Bid {
	return &entity.Bid{
		ID:                     e.ID,
		BidNumber:              e.BidNumber,
		Dated:                  e.Dated,
		Beneficiary:            e.Beneficiary,
		Ministry:               e.Ministry,
		Department:             e.Department,
		Organisation:           e.Organisation,
		OfficeName:             e.OfficeName,
		ItemCategory:           e.ItemCategory,
		ContractPeriod:         e.ContractPeriod,
		BidEndDatetime:         e.BidEndDatetime,
		BidOpenDatetime:        e.BidOpenDatetime,
		BidOfferValidityDays:   e.BidOfferValidityDays,
		DeliveryDays:           e.DeliveryDays,
		TotalQuantity:          e.TotalQuantity,
		EstimatedBidValue:      e.EstimatedBidValue,
		SimilarCategory:        e.SimilarCategory,
		MSEExemption:           e.MseExemption,
		StartupExemption:       e.StartupExemption,
		MSEPurchasePreference:  e.MsePurchasePreference,
		MIIPurchasePreference:  e.MiiPurchasePreference,
		EvaluationMethod:       e.EvaluationMethod,
		InspectionRequired:     e.InspectionRequired,
		PrimaryProductCategory: e.PrimaryProductCategory,
		DeliveryAddress:        e.DeliveryAddress,
		ScopeOfSupply:          e.ScopeOfSupply,
		OptionClause:           e.OptionClause,
		SourceFile:             e.SourceFile,
		RawText:                e.RawText,
		HasEmbedding:           len(e.Embedding) > 0,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

func ymdOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func tsOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func int32OrZero(p *int) int32 {
	if p == nil {
		return 0
	}
	return int32(*p)
}

func ToPBContract(c *entity.Contract) *procurementpb.Contract {
	return &procurementpb.Contract{
		Id:            c.ID.String(),
		ContractNo:    c.ContractNo,
		GeneratedDate: ymdOrEmpty(c.GeneratedDate),
		HasEmbedding:  c.HasEmbedding,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPBContractRecord maps the full record. Satellite blocks that were never
// extracted stay nil on the wire.
func ToPBContractRecord(r *entity.ContractRecord) *procurementpb.ContractRecord {
	out := &procurementpb.ContractRecord{
		Contract:   ToPBContract(&r.Contract),
		EpbgDetail: r.EPBGDetail,
		Terms:      r.Terms,
	}
	if o := r.Organisation; o != nil {
		out.Organisation = &procurementpb.OrganisationDetail{
			Type:             o.Type,
			Ministry:         o.Ministry,
			Department:       o.Department,
			OrganisationName: o.OrganisationName,
			OfficeZone:       o.OfficeZone,
		}
	}
	if b := r.Buyer; b != nil {
		out.Buyer = &procurementpb.BuyerDetail{
			Designation: b.Designation,
			ContactNo:   b.ContactNo,
			Email:       b.Email,
			Gstin:       b.GSTIN,
			Address:     b.Address,
		}
	}
	if fa := r.FinancialApproval; fa != nil {
		out.FinancialApproval = &procurementpb.FinancialApproval{
			IfdConcurrence:               fa.IFDConcurrence,
			AdminApprovalDesignation:     fa.AdminApprovalDesignation,
			FinancialApprovalDesignation: fa.FinancialApprovalDesignation,
		}
	}
	if pa := r.PayingAuthority; pa != nil {
		out.PayingAuthority = &procurementpb.PayingAuthority{
			Role:        pa.Role,
			PaymentMode: pa.PaymentMode,
			Designation: pa.Designation,
			Email:       pa.Email,
			Gstin:       pa.GSTIN,
			Address:     pa.Address,
		}
	}
	if s := r.Seller; s != nil {
		out.Seller = &procurementpb.SellerDetail{
			GemSellerId:            s.GeMSellerID,
			CompanyName:            s.CompanyName,
			ContactNo:              s.ContactNo,
			Email:                  s.Email,
			Address:                s.Address,
			MsmeRegistrationNumber: s.MSMERegistrationNumber,
			Gstin:                  s.GSTIN,
		}
	}
	for i := range r.Products {
		out.Products = append(out.Products, ToPBProduct(&r.Products[i]))
	}
	return out
}

func ToPBProduct(p *entity.Product) *procurementpb.Product {
	out := &procurementpb.Product{
		Id:                   p.ID.String(),
		ProductName:          p.ProductName,
		Brand:                p.Brand,
		BrandType:            p.BrandType,
		CatalogueStatus:      p.CatalogueStatus,
		SellingAs:            p.SellingAs,
		CategoryNameQuadrant: p.CategoryNameQuadrant,
		Model:                p.Model,
		HsnCode:              p.HSNCode,
		OrderedQuantity:      p.OrderedQuantity,
		Unit:                 p.Unit,
		UnitPrice:            p.UnitPrice,
		TaxBifurcation:       p.TaxBifurcation,
		TotalPrice:           p.TotalPrice,
		Note:                 p.Note,
	}
	for _, s := range p.Specifications {
		out.Specifications = append(out.Specifications, &procurementpb.ProductSpecification{
			Category: s.Category,
			SubSpec:  s.SubSpec,
			Value:    s.Value,
		})
	}
	for _, c := range p.Consignees {
		out.Consignees = append(out.Consignees, &procurementpb.ConsigneeDetail{
			SNo:           int32OrZero(c.SNo),
			Designation:   c.Designation,
			Email:         c.Email,
			Contact:       c.Contact,
			Gstin:         c.GSTIN,
			Address:       c.Address,
			LotNo:         c.LotNo,
			Quantity:      int32OrZero(c.Quantity),
			DeliveryStart: ymdOrEmpty(c.DeliveryStart),
			DeliveryEnd:   ymdOrEmpty(c.DeliveryEnd),
			DeliveryTo:    c.DeliveryTo,
		})
	}
	return out
}

func ToPBBid(b *entity.Bid) *procurementpb.Bid {
	return &procurementpb.Bid{
		Id:                     b.ID.String(),
		BidNumber:              b.BidNumber,
		Dated:                  ymdOrEmpty(b.Dated),
		Beneficiary:            b.Beneficiary,
		Ministry:               b.Ministry,
		Department:             b.Department,
		Organisation:           b.Organisation,
		OfficeName:             b.OfficeName,
		ItemCategory:           b.ItemCategory,
		ContractPeriod:         b.ContractPeriod,
		BidEndDatetime:         tsOrEmpty(b.BidEndDatetime),
		BidOpenDatetime:        tsOrEmpty(b.BidOpenDatetime),
		BidOfferValidityDays:   int32OrZero(b.BidOfferValidityDays),
		DeliveryDays:           int32OrZero(b.DeliveryDays),
		TotalQuantity:          b.TotalQuantity,
		EstimatedBidValue:      b.EstimatedBidValue,
		SimilarCategory:        b.SimilarCategory,
		MseExemption:           b.MSEExemption,
		StartupExemption:       b.StartupExemption,
		MsePurchasePreference:  b.MSEPurchasePreference,
		MiiPurchasePreference:  b.MIIPurchasePreference,
		EvaluationMethod:       b.EvaluationMethod,
		InspectionRequired:     b.InspectionRequired,
		PrimaryProductCategory: b.PrimaryProductCategory,
		DeliveryAddress:        b.DeliveryAddress,
		ScopeOfSupply:          b.ScopeOfSupply,
		OptionClause:           b.OptionClause,
		SourceFile:             b.SourceFile,
		HasEmbedding:           b.HasEmbedding,
		CreatedAt:              b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:              b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
