package search

import (
	"strings"

	"github.com/gemdocs/procurement-tracker/internal/entity"
)

// ContractCompleteness counts filled core fields. Reports use it to drop
// records too thin to act on.
func ContractCompleteness(rec *entity.ContractRecord) int {
	n := 0
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}

	add(rec.Contract.ContractNo)
	if rec.Contract.GeneratedDate != nil {
		n++
	}
	if org := rec.Organisation; org != nil {
		add(org.Ministry)
		add(org.Department)
		add(org.OrganisationName)
		add(org.OfficeZone)
	}
	if b := rec.Buyer; b != nil {
		add(b.Designation)
		add(b.Email)
	}
	if s := rec.Seller; s != nil {
		add(s.CompanyName)
		add(s.GSTIN)
	}
	if len(rec.Products) > 0 {
		p := rec.Products[0]
		add(p.ProductName)
		add(p.OrderedQuantity)
		add(p.UnitPrice)
	}
	return n
}

// BidCompleteness is the bid-side analog of ContractCompleteness.
func BidCompleteness(b *entity.Bid) int {
	n := 0
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}

	add(b.BidNumber)
	if b.Dated != nil {
		n++
	}
	add(b.Ministry)
	add(b.Department)
	add(b.Organisation)
	add(b.ItemCategory)
	add(b.TotalQuantity)
	add(b.EstimatedBidValue)
	add(b.DeliveryAddress)
	add(b.EvaluationMethod)
	return n
}
