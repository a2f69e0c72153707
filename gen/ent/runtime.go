// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gemdocs/procurement-tracker/db/ent/schema"
	"github.com/gemdocs/procurement-tracker/gen/ent/bid"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/sourcefile"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bidFields := schema.Bid{}.Fields()
	_ = bidFields
	// bidDescBidNumber is the schema descriptor for bid_number field.
	bidDescBidNumber := bidFields[1].Descriptor()
	// bid.BidNumberValidator is a validator for the "bid_number" field. It is called by the builders before save.
	bid.BidNumberValidator = func() func(string) error {
		validators := bidDescBidNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(bid_number string) error {
			for _, fn := range fns {
				if err := fn(bid_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bidDescBeneficiary is the schema descriptor for beneficiary field.
	bidDescBeneficiary := bidFields[3].Descriptor()
	// bid.BeneficiaryValidator is a validator for the "beneficiary" field. It is called by the builders before save.
	bid.BeneficiaryValidator = bidDescBeneficiary.Validators[0].(func(string) error)
	// bidDescMinistry is the schema descriptor for ministry field.
	bidDescMinistry := bidFields[4].Descriptor()
	// bid.MinistryValidator is a validator for the "ministry" field. It is called by the builders before save.
	bid.MinistryValidator = bidDescMinistry.Validators[0].(func(string) error)
	// bidDescDepartment is the schema descriptor for department field.
	bidDescDepartment := bidFields[5].Descriptor()
	// bid.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	bid.DepartmentValidator = bidDescDepartment.Validators[0].(func(string) error)
	// bidDescOrganisation is the schema descriptor for organisation field.
	bidDescOrganisation := bidFields[6].Descriptor()
	// bid.OrganisationValidator is a validator for the "organisation" field. It is called by the builders before save.
	bid.OrganisationValidator = bidDescOrganisation.Validators[0].(func(string) error)
	// bidDescOfficeName is the schema descriptor for office_name field.
	bidDescOfficeName := bidFields[7].Descriptor()
	// bid.OfficeNameValidator is a validator for the "office_name" field. It is called by the builders before save.
	bid.OfficeNameValidator = bidDescOfficeName.Validators[0].(func(string) error)
	// bidDescContractPeriod is the schema descriptor for contract_period field.
	bidDescContractPeriod := bidFields[9].Descriptor()
	// bid.ContractPeriodValidator is a validator for the "contract_period" field. It is called by the builders before save.
	bid.ContractPeriodValidator = bidDescContractPeriod.Validators[0].(func(string) error)
	// bidDescTotalQuantity is the schema descriptor for total_quantity field.
	bidDescTotalQuantity := bidFields[14].Descriptor()
	// bid.TotalQuantityValidator is a validator for the "total_quantity" field. It is called by the builders before save.
	bid.TotalQuantityValidator = bidDescTotalQuantity.Validators[0].(func(string) error)
	// bidDescEstimatedBidValue is the schema descriptor for estimated_bid_value field.
	bidDescEstimatedBidValue := bidFields[15].Descriptor()
	// bid.EstimatedBidValueValidator is a validator for the "estimated_bid_value" field. It is called by the builders before save.
	bid.EstimatedBidValueValidator = bidDescEstimatedBidValue.Validators[0].(func(string) error)
	// bidDescMseExemption is the schema descriptor for mse_exemption field.
	bidDescMseExemption := bidFields[17].Descriptor()
	// bid.MseExemptionValidator is a validator for the "mse_exemption" field. It is called by the builders before save.
	bid.MseExemptionValidator = bidDescMseExemption.Validators[0].(func(string) error)
	// bidDescStartupExemption is the schema descriptor for startup_exemption field.
	bidDescStartupExemption := bidFields[18].Descriptor()
	// bid.StartupExemptionValidator is a validator for the "startup_exemption" field. It is called by the builders before save.
	bid.StartupExemptionValidator = bidDescStartupExemption.Validators[0].(func(string) error)
	// bidDescMsePurchasePreference is the schema descriptor for mse_purchase_preference field.
	bidDescMsePurchasePreference := bidFields[19].Descriptor()
	// bid.MsePurchasePreferenceValidator is a validator for the "mse_purchase_preference" field. It is called by the builders before save.
	bid.MsePurchasePreferenceValidator = bidDescMsePurchasePreference.Validators[0].(func(string) error)
	// bidDescMiiPurchasePreference is the schema descriptor for mii_purchase_preference field.
	bidDescMiiPurchasePreference := bidFields[20].Descriptor()
	// bid.MiiPurchasePreferenceValidator is a validator for the "mii_purchase_preference" field. It is called by the builders before save.
	bid.MiiPurchasePreferenceValidator = bidDescMiiPurchasePreference.Validators[0].(func(string) error)
	// bidDescEvaluationMethod is the schema descriptor for evaluation_method field.
	bidDescEvaluationMethod := bidFields[21].Descriptor()
	// bid.EvaluationMethodValidator is a validator for the "evaluation_method" field. It is called by the builders before save.
	bid.EvaluationMethodValidator = bidDescEvaluationMethod.Validators[0].(func(string) error)
	// bidDescInspectionRequired is the schema descriptor for inspection_required field.
	bidDescInspectionRequired := bidFields[22].Descriptor()
	// bid.InspectionRequiredValidator is a validator for the "inspection_required" field. It is called by the builders before save.
	bid.InspectionRequiredValidator = bidDescInspectionRequired.Validators[0].(func(string) error)
	// bidDescPrimaryProductCategory is the schema descriptor for primary_product_category field.
	bidDescPrimaryProductCategory := bidFields[23].Descriptor()
	// bid.PrimaryProductCategoryValidator is a validator for the "primary_product_category" field. It is called by the builders before save.
	bid.PrimaryProductCategoryValidator = bidDescPrimaryProductCategory.Validators[0].(func(string) error)
	// bidDescSourceFile is the schema descriptor for source_file field.
	bidDescSourceFile := bidFields[27].Descriptor()
	// bid.SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	bid.SourceFileValidator = bidDescSourceFile.Validators[0].(func(string) error)
	// bidDescCreatedAt is the schema descriptor for created_at field.
	bidDescCreatedAt := bidFields[30].Descriptor()
	// bid.DefaultCreatedAt holds the default value on creation for the created_at field.
	bid.DefaultCreatedAt = bidDescCreatedAt.Default.(func() time.Time)
	// bidDescUpdatedAt is the schema descriptor for updated_at field.
	bidDescUpdatedAt := bidFields[31].Descriptor()
	// bid.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bid.DefaultUpdatedAt = bidDescUpdatedAt.Default.(func() time.Time)
	// bid.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bid.UpdateDefaultUpdatedAt = bidDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bidDescID is the schema descriptor for id field.
	bidDescID := bidFields[0].Descriptor()
	// bid.DefaultID holds the default value on creation for the id field.
	bid.DefaultID = bidDescID.Default.(func() uuid.UUID)
	buyerdetailFields := schema.BuyerDetail{}.Fields()
	_ = buyerdetailFields
	// buyerdetailDescDesignation is the schema descriptor for designation field.
	buyerdetailDescDesignation := buyerdetailFields[2].Descriptor()
	// buyerdetail.DesignationValidator is a validator for the "designation" field. It is called by the builders before save.
	buyerdetail.DesignationValidator = buyerdetailDescDesignation.Validators[0].(func(string) error)
	// buyerdetailDescContactNo is the schema descriptor for contact_no field.
	buyerdetailDescContactNo := buyerdetailFields[3].Descriptor()
	// buyerdetail.ContactNoValidator is a validator for the "contact_no" field. It is called by the builders before save.
	buyerdetail.ContactNoValidator = func() func(string) error {
		validators := buyerdetailDescContactNo.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contact_no string) error {
			for _, fn := range fns {
				if err := fn(contact_no); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// buyerdetailDescEmail is the schema descriptor for email field.
	buyerdetailDescEmail := buyerdetailFields[4].Descriptor()
	// buyerdetail.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	buyerdetail.EmailValidator = buyerdetailDescEmail.Validators[0].(func(string) error)
	// buyerdetailDescGstin is the schema descriptor for gstin field.
	buyerdetailDescGstin := buyerdetailFields[5].Descriptor()
	// buyerdetail.GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	buyerdetail.GstinValidator = buyerdetailDescGstin.Validators[0].(func(string) error)
	// buyerdetailDescID is the schema descriptor for id field.
	buyerdetailDescID := buyerdetailFields[0].Descriptor()
	// buyerdetail.DefaultID holds the default value on creation for the id field.
	buyerdetail.DefaultID = buyerdetailDescID.Default.(func() uuid.UUID)
	consigneedetailFields := schema.ConsigneeDetail{}.Fields()
	_ = consigneedetailFields
	// consigneedetailDescDesignation is the schema descriptor for designation field.
	consigneedetailDescDesignation := consigneedetailFields[3].Descriptor()
	// consigneedetail.DesignationValidator is a validator for the "designation" field. It is called by the builders before save.
	consigneedetail.DesignationValidator = consigneedetailDescDesignation.Validators[0].(func(string) error)
	// consigneedetailDescEmail is the schema descriptor for email field.
	consigneedetailDescEmail := consigneedetailFields[4].Descriptor()
	// consigneedetail.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	consigneedetail.EmailValidator = consigneedetailDescEmail.Validators[0].(func(string) error)
	// consigneedetailDescContact is the schema descriptor for contact field.
	consigneedetailDescContact := consigneedetailFields[5].Descriptor()
	// consigneedetail.ContactValidator is a validator for the "contact" field. It is called by the builders before save.
	consigneedetail.ContactValidator = func() func(string) error {
		validators := consigneedetailDescContact.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contact string) error {
			for _, fn := range fns {
				if err := fn(contact); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// consigneedetailDescGstin is the schema descriptor for gstin field.
	consigneedetailDescGstin := consigneedetailFields[6].Descriptor()
	// consigneedetail.GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	consigneedetail.GstinValidator = consigneedetailDescGstin.Validators[0].(func(string) error)
	// consigneedetailDescLotNo is the schema descriptor for lot_no field.
	consigneedetailDescLotNo := consigneedetailFields[8].Descriptor()
	// consigneedetail.LotNoValidator is a validator for the "lot_no" field. It is called by the builders before save.
	consigneedetail.LotNoValidator = consigneedetailDescLotNo.Validators[0].(func(string) error)
	// consigneedetailDescDeliveryTo is the schema descriptor for delivery_to field.
	consigneedetailDescDeliveryTo := consigneedetailFields[12].Descriptor()
	// consigneedetail.DeliveryToValidator is a validator for the "delivery_to" field. It is called by the builders before save.
	consigneedetail.DeliveryToValidator = consigneedetailDescDeliveryTo.Validators[0].(func(string) error)
	// consigneedetailDescID is the schema descriptor for id field.
	consigneedetailDescID := consigneedetailFields[0].Descriptor()
	// consigneedetail.DefaultID holds the default value on creation for the id field.
	consigneedetail.DefaultID = consigneedetailDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescContractNo is the schema descriptor for contract_no field.
	contractDescContractNo := contractFields[1].Descriptor()
	// contract.ContractNoValidator is a validator for the "contract_no" field. It is called by the builders before save.
	contract.ContractNoValidator = func() func(string) error {
		validators := contractDescContractNo.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contract_no string) error {
			for _, fn := range fns {
				if err := fn(contract_no); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[5].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[6].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	epbgdetailFields := schema.EPBGDetail{}.Fields()
	_ = epbgdetailFields
	// epbgdetailDescID is the schema descriptor for id field.
	epbgdetailDescID := epbgdetailFields[0].Descriptor()
	// epbgdetail.DefaultID holds the default value on creation for the id field.
	epbgdetail.DefaultID = epbgdetailDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescDocType is the schema descriptor for doc_type field.
	extractjobDescDocType := extractjobFields[5].Descriptor()
	// extractjob.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	extractjob.DocTypeValidator = extractjobDescDocType.Validators[0].(func(string) error)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[6].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	financialapprovalFields := schema.FinancialApproval{}.Fields()
	_ = financialapprovalFields
	// financialapprovalDescIfdConcurrence is the schema descriptor for ifd_concurrence field.
	financialapprovalDescIfdConcurrence := financialapprovalFields[2].Descriptor()
	// financialapproval.DefaultIfdConcurrence holds the default value on creation for the ifd_concurrence field.
	financialapproval.DefaultIfdConcurrence = financialapprovalDescIfdConcurrence.Default.(bool)
	// financialapprovalDescAdminApprovalDesignation is the schema descriptor for admin_approval_designation field.
	financialapprovalDescAdminApprovalDesignation := financialapprovalFields[3].Descriptor()
	// financialapproval.AdminApprovalDesignationValidator is a validator for the "admin_approval_designation" field. It is called by the builders before save.
	financialapproval.AdminApprovalDesignationValidator = financialapprovalDescAdminApprovalDesignation.Validators[0].(func(string) error)
	// financialapprovalDescFinancialApprovalDesignation is the schema descriptor for financial_approval_designation field.
	financialapprovalDescFinancialApprovalDesignation := financialapprovalFields[4].Descriptor()
	// financialapproval.FinancialApprovalDesignationValidator is a validator for the "financial_approval_designation" field. It is called by the builders before save.
	financialapproval.FinancialApprovalDesignationValidator = financialapprovalDescFinancialApprovalDesignation.Validators[0].(func(string) error)
	// financialapprovalDescID is the schema descriptor for id field.
	financialapprovalDescID := financialapprovalFields[0].Descriptor()
	// financialapproval.DefaultID holds the default value on creation for the id field.
	financialapproval.DefaultID = financialapprovalDescID.Default.(func() uuid.UUID)
	organisationdetailFields := schema.OrganisationDetail{}.Fields()
	_ = organisationdetailFields
	// organisationdetailDescType is the schema descriptor for type field.
	organisationdetailDescType := organisationdetailFields[2].Descriptor()
	// organisationdetail.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	organisationdetail.TypeValidator = organisationdetailDescType.Validators[0].(func(string) error)
	// organisationdetailDescMinistry is the schema descriptor for ministry field.
	organisationdetailDescMinistry := organisationdetailFields[3].Descriptor()
	// organisationdetail.MinistryValidator is a validator for the "ministry" field. It is called by the builders before save.
	organisationdetail.MinistryValidator = organisationdetailDescMinistry.Validators[0].(func(string) error)
	// organisationdetailDescDepartment is the schema descriptor for department field.
	organisationdetailDescDepartment := organisationdetailFields[4].Descriptor()
	// organisationdetail.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	organisationdetail.DepartmentValidator = organisationdetailDescDepartment.Validators[0].(func(string) error)
	// organisationdetailDescOrganisationName is the schema descriptor for organisation_name field.
	organisationdetailDescOrganisationName := organisationdetailFields[5].Descriptor()
	// organisationdetail.OrganisationNameValidator is a validator for the "organisation_name" field. It is called by the builders before save.
	organisationdetail.OrganisationNameValidator = organisationdetailDescOrganisationName.Validators[0].(func(string) error)
	// organisationdetailDescOfficeZone is the schema descriptor for office_zone field.
	organisationdetailDescOfficeZone := organisationdetailFields[6].Descriptor()
	// organisationdetail.OfficeZoneValidator is a validator for the "office_zone" field. It is called by the builders before save.
	organisationdetail.OfficeZoneValidator = organisationdetailDescOfficeZone.Validators[0].(func(string) error)
	// organisationdetailDescID is the schema descriptor for id field.
	organisationdetailDescID := organisationdetailFields[0].Descriptor()
	// organisationdetail.DefaultID holds the default value on creation for the id field.
	organisationdetail.DefaultID = organisationdetailDescID.Default.(func() uuid.UUID)
	payingauthorityFields := schema.PayingAuthority{}.Fields()
	_ = payingauthorityFields
	// payingauthorityDescRole is the schema descriptor for role field.
	payingauthorityDescRole := payingauthorityFields[2].Descriptor()
	// payingauthority.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	payingauthority.RoleValidator = payingauthorityDescRole.Validators[0].(func(string) error)
	// payingauthorityDescPaymentMode is the schema descriptor for payment_mode field.
	payingauthorityDescPaymentMode := payingauthorityFields[3].Descriptor()
	// payingauthority.PaymentModeValidator is a validator for the "payment_mode" field. It is called by the builders before save.
	payingauthority.PaymentModeValidator = payingauthorityDescPaymentMode.Validators[0].(func(string) error)
	// payingauthorityDescDesignation is the schema descriptor for designation field.
	payingauthorityDescDesignation := payingauthorityFields[4].Descriptor()
	// payingauthority.DesignationValidator is a validator for the "designation" field. It is called by the builders before save.
	payingauthority.DesignationValidator = payingauthorityDescDesignation.Validators[0].(func(string) error)
	// payingauthorityDescEmail is the schema descriptor for email field.
	payingauthorityDescEmail := payingauthorityFields[5].Descriptor()
	// payingauthority.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	payingauthority.EmailValidator = payingauthorityDescEmail.Validators[0].(func(string) error)
	// payingauthorityDescGstin is the schema descriptor for gstin field.
	payingauthorityDescGstin := payingauthorityFields[6].Descriptor()
	// payingauthority.GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	payingauthority.GstinValidator = payingauthorityDescGstin.Validators[0].(func(string) error)
	// payingauthorityDescID is the schema descriptor for id field.
	payingauthorityDescID := payingauthorityFields[0].Descriptor()
	// payingauthority.DefaultID holds the default value on creation for the id field.
	payingauthority.DefaultID = payingauthorityDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescProductName is the schema descriptor for product_name field.
	productDescProductName := productFields[2].Descriptor()
	// product.ProductNameValidator is a validator for the "product_name" field. It is called by the builders before save.
	product.ProductNameValidator = func() func(string) error {
		validators := productDescProductName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(product_name string) error {
			for _, fn := range fns {
				if err := fn(product_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productDescBrand is the schema descriptor for brand field.
	productDescBrand := productFields[3].Descriptor()
	// product.BrandValidator is a validator for the "brand" field. It is called by the builders before save.
	product.BrandValidator = productDescBrand.Validators[0].(func(string) error)
	// productDescBrandType is the schema descriptor for brand_type field.
	productDescBrandType := productFields[4].Descriptor()
	// product.BrandTypeValidator is a validator for the "brand_type" field. It is called by the builders before save.
	product.BrandTypeValidator = productDescBrandType.Validators[0].(func(string) error)
	// productDescCatalogueStatus is the schema descriptor for catalogue_status field.
	productDescCatalogueStatus := productFields[5].Descriptor()
	// product.CatalogueStatusValidator is a validator for the "catalogue_status" field. It is called by the builders before save.
	product.CatalogueStatusValidator = productDescCatalogueStatus.Validators[0].(func(string) error)
	// productDescSellingAs is the schema descriptor for selling_as field.
	productDescSellingAs := productFields[6].Descriptor()
	// product.SellingAsValidator is a validator for the "selling_as" field. It is called by the builders before save.
	product.SellingAsValidator = productDescSellingAs.Validators[0].(func(string) error)
	// productDescCategoryNameQuadrant is the schema descriptor for category_name_quadrant field.
	productDescCategoryNameQuadrant := productFields[7].Descriptor()
	// product.CategoryNameQuadrantValidator is a validator for the "category_name_quadrant" field. It is called by the builders before save.
	product.CategoryNameQuadrantValidator = productDescCategoryNameQuadrant.Validators[0].(func(string) error)
	// productDescModel is the schema descriptor for model field.
	productDescModel := productFields[8].Descriptor()
	// product.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	product.ModelValidator = productDescModel.Validators[0].(func(string) error)
	// productDescHsnCode is the schema descriptor for hsn_code field.
	productDescHsnCode := productFields[9].Descriptor()
	// product.HsnCodeValidator is a validator for the "hsn_code" field. It is called by the builders before save.
	product.HsnCodeValidator = productDescHsnCode.Validators[0].(func(string) error)
	// productDescOrderedQuantity is the schema descriptor for ordered_quantity field.
	productDescOrderedQuantity := productFields[10].Descriptor()
	// product.OrderedQuantityValidator is a validator for the "ordered_quantity" field. It is called by the builders before save.
	product.OrderedQuantityValidator = productDescOrderedQuantity.Validators[0].(func(string) error)
	// productDescUnit is the schema descriptor for unit field.
	productDescUnit := productFields[11].Descriptor()
	// product.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	product.UnitValidator = productDescUnit.Validators[0].(func(string) error)
	// productDescUnitPrice is the schema descriptor for unit_price field.
	productDescUnitPrice := productFields[12].Descriptor()
	// product.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	product.UnitPriceValidator = productDescUnitPrice.Validators[0].(func(string) error)
	// productDescTaxBifurcation is the schema descriptor for tax_bifurcation field.
	productDescTaxBifurcation := productFields[13].Descriptor()
	// product.TaxBifurcationValidator is a validator for the "tax_bifurcation" field. It is called by the builders before save.
	product.TaxBifurcationValidator = productDescTaxBifurcation.Validators[0].(func(string) error)
	// productDescTotalPrice is the schema descriptor for total_price field.
	productDescTotalPrice := productFields[14].Descriptor()
	// product.TotalPriceValidator is a validator for the "total_price" field. It is called by the builders before save.
	product.TotalPriceValidator = productDescTotalPrice.Validators[0].(func(string) error)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[17].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[18].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	productspecificationFields := schema.ProductSpecification{}.Fields()
	_ = productspecificationFields
	// productspecificationDescCategory is the schema descriptor for category field.
	productspecificationDescCategory := productspecificationFields[2].Descriptor()
	// productspecification.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	productspecification.CategoryValidator = productspecificationDescCategory.Validators[0].(func(string) error)
	// productspecificationDescSubSpec is the schema descriptor for sub_spec field.
	productspecificationDescSubSpec := productspecificationFields[3].Descriptor()
	// productspecification.SubSpecValidator is a validator for the "sub_spec" field. It is called by the builders before save.
	productspecification.SubSpecValidator = productspecificationDescSubSpec.Validators[0].(func(string) error)
	// productspecificationDescValue is the schema descriptor for value field.
	productspecificationDescValue := productspecificationFields[4].Descriptor()
	// productspecification.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	productspecification.ValueValidator = productspecificationDescValue.Validators[0].(func(string) error)
	// productspecificationDescID is the schema descriptor for id field.
	productspecificationDescID := productspecificationFields[0].Descriptor()
	// productspecification.DefaultID holds the default value on creation for the id field.
	productspecification.DefaultID = productspecificationDescID.Default.(func() uuid.UUID)
	sellerdetailFields := schema.SellerDetail{}.Fields()
	_ = sellerdetailFields
	// sellerdetailDescGemSellerID is the schema descriptor for gem_seller_id field.
	sellerdetailDescGemSellerID := sellerdetailFields[2].Descriptor()
	// sellerdetail.GemSellerIDValidator is a validator for the "gem_seller_id" field. It is called by the builders before save.
	sellerdetail.GemSellerIDValidator = sellerdetailDescGemSellerID.Validators[0].(func(string) error)
	// sellerdetailDescCompanyName is the schema descriptor for company_name field.
	sellerdetailDescCompanyName := sellerdetailFields[3].Descriptor()
	// sellerdetail.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	sellerdetail.CompanyNameValidator = sellerdetailDescCompanyName.Validators[0].(func(string) error)
	// sellerdetailDescContactNo is the schema descriptor for contact_no field.
	sellerdetailDescContactNo := sellerdetailFields[4].Descriptor()
	// sellerdetail.ContactNoValidator is a validator for the "contact_no" field. It is called by the builders before save.
	sellerdetail.ContactNoValidator = func() func(string) error {
		validators := sellerdetailDescContactNo.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contact_no string) error {
			for _, fn := range fns {
				if err := fn(contact_no); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sellerdetailDescEmail is the schema descriptor for email field.
	sellerdetailDescEmail := sellerdetailFields[5].Descriptor()
	// sellerdetail.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	sellerdetail.EmailValidator = sellerdetailDescEmail.Validators[0].(func(string) error)
	// sellerdetailDescMsmeRegistrationNumber is the schema descriptor for msme_registration_number field.
	sellerdetailDescMsmeRegistrationNumber := sellerdetailFields[7].Descriptor()
	// sellerdetail.MsmeRegistrationNumberValidator is a validator for the "msme_registration_number" field. It is called by the builders before save.
	sellerdetail.MsmeRegistrationNumberValidator = sellerdetailDescMsmeRegistrationNumber.Validators[0].(func(string) error)
	// sellerdetailDescGstin is the schema descriptor for gstin field.
	sellerdetailDescGstin := sellerdetailFields[8].Descriptor()
	// sellerdetail.GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	sellerdetail.GstinValidator = sellerdetailDescGstin.Validators[0].(func(string) error)
	// sellerdetailDescID is the schema descriptor for id field.
	sellerdetailDescID := sellerdetailFields[0].Descriptor()
	// sellerdetail.DefaultID holds the default value on creation for the id field.
	sellerdetail.DefaultID = sellerdetailDescID.Default.(func() uuid.UUID)
	sourcefileFields := schema.SourceFile{}.Fields()
	_ = sourcefileFields
	// sourcefileDescSourcePath is the schema descriptor for source_path field.
	sourcefileDescSourcePath := sourcefileFields[1].Descriptor()
	// sourcefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	sourcefile.SourcePathValidator = sourcefileDescSourcePath.Validators[0].(func(string) error)
	// sourcefileDescContentHash is the schema descriptor for content_hash field.
	sourcefileDescContentHash := sourcefileFields[2].Descriptor()
	// sourcefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	sourcefile.ContentHashValidator = sourcefileDescContentHash.Validators[0].(func([]byte) error)
	// sourcefileDescFilename is the schema descriptor for filename field.
	sourcefileDescFilename := sourcefileFields[3].Descriptor()
	// sourcefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	sourcefile.FilenameValidator = sourcefileDescFilename.Validators[0].(func(string) error)
	// sourcefileDescFileExt is the schema descriptor for file_ext field.
	sourcefileDescFileExt := sourcefileFields[4].Descriptor()
	// sourcefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	sourcefile.FileExtValidator = sourcefileDescFileExt.Validators[0].(func(string) error)
	// sourcefileDescFileSize is the schema descriptor for file_size field.
	sourcefileDescFileSize := sourcefileFields[5].Descriptor()
	// sourcefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	sourcefile.FileSizeValidator = sourcefileDescFileSize.Validators[0].(func(int) error)
	// sourcefileDescDocType is the schema descriptor for doc_type field.
	sourcefileDescDocType := sourcefileFields[6].Descriptor()
	// sourcefile.DefaultDocType holds the default value on creation for the doc_type field.
	sourcefile.DefaultDocType = sourcefileDescDocType.Default.(string)
	// sourcefile.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	sourcefile.DocTypeValidator = sourcefileDescDocType.Validators[0].(func(string) error)
	// sourcefileDescUploadedAt is the schema descriptor for uploaded_at field.
	sourcefileDescUploadedAt := sourcefileFields[7].Descriptor()
	// sourcefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	sourcefile.DefaultUploadedAt = sourcefileDescUploadedAt.Default.(func() time.Time)
	// sourcefileDescID is the schema descriptor for id field.
	sourcefileDescID := sourcefileFields[0].Descriptor()
	// sourcefile.DefaultID holds the default value on creation for the id field.
	sourcefile.DefaultID = sourcefileDescID.Default.(func() uuid.UUID)
	termsandconditionFields := schema.TermsAndCondition{}.Fields()
	_ = termsandconditionFields
	// termsandconditionDescClauseText is the schema descriptor for clause_text field.
	termsandconditionDescClauseText := termsandconditionFields[2].Descriptor()
	// termsandcondition.ClauseTextValidator is a validator for the "clause_text" field. It is called by the builders before save.
	termsandcondition.ClauseTextValidator = termsandconditionDescClauseText.Validators[0].(func(string) error)
	// termsandconditionDescID is the schema descriptor for id field.
	termsandconditionDescID := termsandconditionFields[0].Descriptor()
	// termsandcondition.DefaultID holds the default value on creation for the id field.
	termsandcondition.DefaultID = termsandconditionDescID.Default.(func() uuid.UUID)
}
