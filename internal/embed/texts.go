package embed

import (
	"strings"

	"github.com/gemdocs/procurement-tracker/internal/entity"
)

// embedTextCap bounds composed text so one oversized document cannot blow
// the endpoint's input limit.
const embedTextCap = 2048

// ContractEmbeddingText composes the searchable essence of a contract:
// identifiers, the buying organisation, the seller and the product lines.
func ContractEmbeddingText(rec *entity.ContractRecord) string {
	parts := []string{rec.Contract.ContractNo}
	if org := rec.Organisation; org != nil {
		parts = append(parts, org.Ministry, org.Department, org.OrganisationName, org.OfficeZone)
	}
	if b := rec.Buyer; b != nil {
		parts = append(parts, b.Designation, b.Address)
	}
	if s := rec.Seller; s != nil {
		parts = append(parts, s.CompanyName, s.Address)
	}
	for _, p := range rec.Products {
		parts = append(parts, p.ProductName, p.Brand, p.CategoryNameQuadrant)
	}
	return joinParts(parts)
}

// ProductEmbeddingText composes a product line's descriptive fields.
func ProductEmbeddingText(p entity.Product) string {
	parts := []string{
		p.ProductName,
		p.Brand,
		p.BrandType,
		p.CategoryNameQuadrant,
		p.Model,
		p.HSNCode,
	}
	for _, s := range p.Specifications {
		parts = append(parts, s.SubSpec, s.Value)
	}
	return joinParts(parts)
}

// BidEmbeddingText composes the searchable essence of a bid.
func BidEmbeddingText(b *entity.Bid) string {
	parts := []string{
		b.BidNumber,
		b.Ministry,
		b.Department,
		b.Organisation,
		b.OfficeName,
		b.ItemCategory,
		b.PrimaryProductCategory,
		b.SimilarCategory,
		b.DeliveryAddress,
		b.ScopeOfSupply,
	}
	return joinParts(parts)
}

func joinParts(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	s := strings.Join(kept, " | ")
	if len(s) > embedTextCap {
		cut := embedTextCap
		for cut > 0 && s[cut]&0xC0 == 0x80 {
			cut--
		}
		s = s[:cut]
	}
	return s
}
