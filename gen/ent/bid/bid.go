// Code generated by ent, DO NOT EDIT.

package bid

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bid type in the database.
	Label = "bid"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBidNumber holds the string denoting the bid_number field in the database.
	FieldBidNumber = "bid_number"
	// FieldDated holds the string denoting the dated field in the database.
	FieldDated = "dated"
	// FieldBeneficiary holds the string denoting the beneficiary field in the database.
	FieldBeneficiary = "beneficiary"
	// FieldMinistry holds the string denoting the ministry field in the database.
	FieldMinistry = "ministry"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldOrganisation holds the string denoting the organisation field in the database.
	FieldOrganisation = "organisation"
	// FieldOfficeName holds the string denoting the office_name field in the database.
	FieldOfficeName = "office_name"
	// FieldItemCategory holds the string denoting the item_category field in the database.
	FieldItemCategory = "item_category"
	// FieldContractPeriod holds the string denoting the contract_period field in the database.
	FieldContractPeriod = "contract_period"
	// FieldBidEndDatetime holds the string denoting the bid_end_datetime field in the database.
	FieldBidEndDatetime = "bid_end_datetime"
	// FieldBidOpenDatetime holds the string denoting the bid_open_datetime field in the database.
	FieldBidOpenDatetime = "bid_open_datetime"
	// FieldBidOfferValidityDays holds the string denoting the bid_offer_validity_days field in the database.
	FieldBidOfferValidityDays = "bid_offer_validity_days"
	// FieldDeliveryDays holds the string denoting the delivery_days field in the database.
	FieldDeliveryDays = "delivery_days"
	// FieldTotalQuantity holds the string denoting the total_quantity field in the database.
	FieldTotalQuantity = "total_quantity"
	// FieldEstimatedBidValue holds the string denoting the estimated_bid_value field in the database.
	FieldEstimatedBidValue = "estimated_bid_value"
	// FieldSimilarCategory holds the string denoting the similar_category field in the database.
	FieldSimilarCategory = "similar_category"
	// FieldMseExemption holds the string denoting the mse_exemption field in the database.
	FieldMseExemption = "mse_exemption"
	// FieldStartupExemption holds the string denoting the startup_exemption field in the database.
	FieldStartupExemption = "startup_exemption"
	// FieldMsePurchasePreference holds the string denoting the mse_purchase_preference field in the database.
	FieldMsePurchasePreference = "mse_purchase_preference"
	// FieldMiiPurchasePreference holds the string denoting the mii_purchase_preference field in the database.
	FieldMiiPurchasePreference = "mii_purchase_preference"
	// FieldEvaluationMethod holds the string denoting the evaluation_method field in the database.
	FieldEvaluationMethod = "evaluation_method"
	// FieldInspectionRequired holds the string denoting the inspection_required field in the database.
	FieldInspectionRequired = "inspection_required"
	// FieldPrimaryProductCategory holds the string denoting the primary_product_category field in the database.
	FieldPrimaryProductCategory = "primary_product_category"
	// FieldDeliveryAddress holds the string denoting the delivery_address field in the database.
	FieldDeliveryAddress = "delivery_address"
	// FieldScopeOfSupply holds the string denoting the scope_of_supply field in the database.
	FieldScopeOfSupply = "scope_of_supply"
	// FieldOptionClause holds the string denoting the option_clause field in the database.
	FieldOptionClause = "option_clause"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the bid in the database.
	Table = "bids"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_jobs"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "bid_id"
)

// Columns holds all SQL columns for bid fields.
var Columns = []string{
	FieldID,
	FieldBidNumber,
	FieldDated,
	FieldBeneficiary,
	FieldMinistry,
	FieldDepartment,
	FieldOrganisation,
	FieldOfficeName,
	FieldItemCategory,
	FieldContractPeriod,
	FieldBidEndDatetime,
	FieldBidOpenDatetime,
	FieldBidOfferValidityDays,
	FieldDeliveryDays,
	FieldTotalQuantity,
	FieldEstimatedBidValue,
	FieldSimilarCategory,
	FieldMseExemption,
	FieldStartupExemption,
	FieldMsePurchasePreference,
	FieldMiiPurchasePreference,
	FieldEvaluationMethod,
	FieldInspectionRequired,
	FieldPrimaryProductCategory,
	FieldDeliveryAddress,
	FieldScopeOfSupply,
	FieldOptionClause,
	FieldSourceFile,
	FieldRawText,
	FieldEmbedding,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BidNumberValidator is a validator for the "bid_number" field. It is called by the builders before save.
	BidNumberValidator func(string) error
	// BeneficiaryValidator is a validator for the "beneficiary" field. It is called by the builders before save.
	BeneficiaryValidator func(string) error
	// MinistryValidator is a validator for the "ministry" field. It is called by the builders before save.
	MinistryValidator func(string) error
	// DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	DepartmentValidator func(string) error
	// OrganisationValidator is a validator for the "organisation" field. It is called by the builders before save.
	OrganisationValidator func(string) error
	// OfficeNameValidator is a validator for the "office_name" field. It is called by the builders before save.
	OfficeNameValidator func(string) error
	// ContractPeriodValidator is a validator for the "contract_period" field. It is called by the builders before save.
	ContractPeriodValidator func(string) error
	// TotalQuantityValidator is a validator for the "total_quantity" field. It is called by the builders before save.
	TotalQuantityValidator func(string) error
	// EstimatedBidValueValidator is a validator for the "estimated_bid_value" field. It is called by the builders before save.
	EstimatedBidValueValidator func(string) error
	// MseExemptionValidator is a validator for the "mse_exemption" field. It is called by the builders before save.
	MseExemptionValidator func(string) error
	// StartupExemptionValidator is a validator for the "startup_exemption" field. It is called by the builders before save.
	StartupExemptionValidator func(string) error
	// MsePurchasePreferenceValidator is a validator for the "mse_purchase_preference" field. It is called by the builders before save.
	MsePurchasePreferenceValidator func(string) error
	// MiiPurchasePreferenceValidator is a validator for the "mii_purchase_preference" field. It is called by the builders before save.
	MiiPurchasePreferenceValidator func(string) error
	// EvaluationMethodValidator is a validator for the "evaluation_method" field. It is called by the builders before save.
	EvaluationMethodValidator func(string) error
	// InspectionRequiredValidator is a validator for the "inspection_required" field. It is called by the builders before save.
	InspectionRequiredValidator func(string) error
	// PrimaryProductCategoryValidator is a validator for the "primary_product_category" field. It is called by the builders before save.
	PrimaryProductCategoryValidator func(string) error
	// SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	SourceFileValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Bid queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBidNumber orders the results by the bid_number field.
func ByBidNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidNumber, opts...).ToFunc()
}

// ByDated orders the results by the dated field.
func ByDated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDated, opts...).ToFunc()
}

// ByBeneficiary orders the results by the beneficiary field.
func ByBeneficiary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeneficiary, opts...).ToFunc()
}

// ByMinistry orders the results by the ministry field.
func ByMinistry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinistry, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByOrganisation orders the results by the organisation field.
func ByOrganisation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganisation, opts...).ToFunc()
}

// ByOfficeName orders the results by the office_name field.
func ByOfficeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfficeName, opts...).ToFunc()
}

// ByItemCategory orders the results by the item_category field.
func ByItemCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCategory, opts...).ToFunc()
}

// ByContractPeriod orders the results by the contract_period field.
func ByContractPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractPeriod, opts...).ToFunc()
}

// ByBidEndDatetime orders the results by the bid_end_datetime field.
func ByBidEndDatetime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidEndDatetime, opts...).ToFunc()
}

// ByBidOpenDatetime orders the results by the bid_open_datetime field.
func ByBidOpenDatetime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidOpenDatetime, opts...).ToFunc()
}

// ByBidOfferValidityDays orders the results by the bid_offer_validity_days field.
func ByBidOfferValidityDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidOfferValidityDays, opts...).ToFunc()
}

// ByDeliveryDays orders the results by the delivery_days field.
func ByDeliveryDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryDays, opts...).ToFunc()
}

// ByTotalQuantity orders the results by the total_quantity field.
func ByTotalQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuantity, opts...).ToFunc()
}

// ByEstimatedBidValue orders the results by the estimated_bid_value field.
func ByEstimatedBidValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedBidValue, opts...).ToFunc()
}

// BySimilarCategory orders the results by the similar_category field.
func BySimilarCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarCategory, opts...).ToFunc()
}

// ByMseExemption orders the results by the mse_exemption field.
func ByMseExemption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMseExemption, opts...).ToFunc()
}

// ByStartupExemption orders the results by the startup_exemption field.
func ByStartupExemption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartupExemption, opts...).ToFunc()
}

// ByMsePurchasePreference orders the results by the mse_purchase_preference field.
func ByMsePurchasePreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMsePurchasePreference, opts...).ToFunc()
}

// ByMiiPurchasePreference orders the results by the mii_purchase_preference field.
func ByMiiPurchasePreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMiiPurchasePreference, opts...).ToFunc()
}

// ByEvaluationMethod orders the results by the evaluation_method field.
func ByEvaluationMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationMethod, opts...).ToFunc()
}

// ByInspectionRequired orders the results by the inspection_required field.
func ByInspectionRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInspectionRequired, opts...).ToFunc()
}

// ByPrimaryProductCategory orders the results by the primary_product_category field.
func ByPrimaryProductCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryProductCategory, opts...).ToFunc()
}

// ByDeliveryAddress orders the results by the delivery_address field.
func ByDeliveryAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryAddress, opts...).ToFunc()
}

// ByScopeOfSupply orders the results by the scope_of_supply field.
func ByScopeOfSupply(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeOfSupply, opts...).ToFunc()
}

// ByOptionClause orders the results by the option_clause field.
func ByOptionClause(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionClause, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
