// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bid is the predicate function for bid builders.
type Bid func(*sql.Selector)

// BuyerDetail is the predicate function for buyerdetail builders.
type BuyerDetail func(*sql.Selector)

// ConsigneeDetail is the predicate function for consigneedetail builders.
type ConsigneeDetail func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// EPBGDetail is the predicate function for epbgdetail builders.
type EPBGDetail func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// FinancialApproval is the predicate function for financialapproval builders.
type FinancialApproval func(*sql.Selector)

// OrganisationDetail is the predicate function for organisationdetail builders.
type OrganisationDetail func(*sql.Selector)

// PayingAuthority is the predicate function for payingauthority builders.
type PayingAuthority func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// ProductSpecification is the predicate function for productspecification builders.
type ProductSpecification func(*sql.Selector)

// SellerDetail is the predicate function for sellerdetail builders.
type SellerDetail func(*sql.Selector)

// SourceFile is the predicate function for sourcefile builders.
type SourceFile func(*sql.Selector)

// TermsAndCondition is the predicate function for termsandcondition builders.
type TermsAndCondition func(*sql.Selector)
