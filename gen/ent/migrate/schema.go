// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BidsColumns holds the columns for the "bids" table.
	BidsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "bid_number", Type: field.TypeString, Unique: true, Size: 128},
		{Name: "dated", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "beneficiary", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "ministry", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "department", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "organisation", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "office_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "item_category", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "contract_period", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "bid_end_datetime", Type: field.TypeTime, Nullable: true},
		{Name: "bid_open_datetime", Type: field.TypeTime, Nullable: true},
		{Name: "bid_offer_validity_days", Type: field.TypeInt, Nullable: true},
		{Name: "delivery_days", Type: field.TypeInt, Nullable: true},
		{Name: "total_quantity", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "estimated_bid_value", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "similar_category", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "mse_exemption", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "startup_exemption", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "mse_purchase_preference", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "mii_purchase_preference", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "evaluation_method", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "inspection_required", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "primary_product_category", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "delivery_address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "scope_of_supply", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "option_clause", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "source_file", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BidsTable holds the schema information for the "bids" table.
	BidsTable = &schema.Table{
		Name:       "bids",
		Columns:    BidsColumns,
		PrimaryKey: []*schema.Column{BidsColumns[0]},
	}
	// BuyerDetailsColumns holds the columns for the "buyer_details" table.
	BuyerDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "designation", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "contact_no", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 254},
		{Name: "gstin", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "contract_id", Type: field.TypeUUID, Unique: true},
	}
	// BuyerDetailsTable holds the schema information for the "buyer_details" table.
	BuyerDetailsTable = &schema.Table{
		Name:       "buyer_details",
		Columns:    BuyerDetailsColumns,
		PrimaryKey: []*schema.Column{BuyerDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "buyer_details_contracts_buyer",
				Columns:    []*schema.Column{BuyerDetailsColumns[6]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ConsigneeDetailsColumns holds the columns for the "consignee_details" table.
	ConsigneeDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "s_no", Type: field.TypeInt, Nullable: true},
		{Name: "designation", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 254},
		{Name: "contact", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "gstin", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "lot_no", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "quantity", Type: field.TypeInt, Nullable: true},
		{Name: "delivery_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "delivery_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "delivery_to", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "product_id", Type: field.TypeUUID},
	}
	// ConsigneeDetailsTable holds the schema information for the "consignee_details" table.
	ConsigneeDetailsTable = &schema.Table{
		Name:       "consignee_details",
		Columns:    ConsigneeDetailsColumns,
		PrimaryKey: []*schema.Column{ConsigneeDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "consignee_details_products_consignees",
				Columns:    []*schema.Column{ConsigneeDetailsColumns[12]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "contract_no", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "generated_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
	}
	// EpbgDetailsColumns holds the columns for the "epbg_details" table.
	EpbgDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "detail", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "contract_id", Type: field.TypeUUID, Unique: true},
	}
	// EpbgDetailsTable holds the schema information for the "epbg_details" table.
	EpbgDetailsTable = &schema.Table{
		Name:       "epbg_details",
		Columns:    EpbgDetailsColumns,
		PrimaryKey: []*schema.Column{EpbgDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "epbg_details_contracts_epbg",
				Columns:    []*schema.Column{EpbgDetailsColumns[2]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "bid_id", Type: field.TypeUUID, Nullable: true},
		{Name: "contract_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_bids_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[11]},
				RefColumns: []*schema.Column{BidsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_jobs_contracts_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[12]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_jobs_source_files_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[13]},
				RefColumns: []*schema.Column{SourceFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[5], ExtractJobsColumns[3]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[13]},
			},
			{
				Name:    "extractjob_contract_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[12]},
			},
			{
				Name:    "extractjob_bid_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[11]},
			},
		},
	}
	// FinancialApprovalsColumns holds the columns for the "financial_approvals" table.
	FinancialApprovalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "ifd_concurrence", Type: field.TypeBool, Default: false},
		{Name: "admin_approval_designation", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "financial_approval_designation", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "contract_id", Type: field.TypeUUID, Unique: true},
	}
	// FinancialApprovalsTable holds the schema information for the "financial_approvals" table.
	FinancialApprovalsTable = &schema.Table{
		Name:       "financial_approvals",
		Columns:    FinancialApprovalsColumns,
		PrimaryKey: []*schema.Column{FinancialApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "financial_approvals_contracts_financial_approval",
				Columns:    []*schema.Column{FinancialApprovalsColumns[4]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// OrganisationDetailsColumns holds the columns for the "organisation_details" table.
	OrganisationDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "ministry", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "department", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "organisation_name", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "office_zone", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "contract_id", Type: field.TypeUUID, Unique: true},
	}
	// OrganisationDetailsTable holds the schema information for the "organisation_details" table.
	OrganisationDetailsTable = &schema.Table{
		Name:       "organisation_details",
		Columns:    OrganisationDetailsColumns,
		PrimaryKey: []*schema.Column{OrganisationDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "organisation_details_contracts_organisation",
				Columns:    []*schema.Column{OrganisationDetailsColumns[6]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PayingAuthoritiesColumns holds the columns for the "paying_authorities" table.
	PayingAuthoritiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "payment_mode", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "designation", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 254},
		{Name: "gstin", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "contract_id", Type: field.TypeUUID, Unique: true},
	}
	// PayingAuthoritiesTable holds the schema information for the "paying_authorities" table.
	PayingAuthoritiesTable = &schema.Table{
		Name:       "paying_authorities",
		Columns:    PayingAuthoritiesColumns,
		PrimaryKey: []*schema.Column{PayingAuthoritiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "paying_authorities_contracts_paying_authority",
				Columns:    []*schema.Column{PayingAuthoritiesColumns[7]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "product_name", Type: field.TypeString, Size: 512},
		{Name: "brand", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "brand_type", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "catalogue_status", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "selling_as", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "category_name_quadrant", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "model", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "hsn_code", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "ordered_quantity", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "unit", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "unit_price", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "tax_bifurcation", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "total_price", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "note", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_contracts_products",
				Columns:    []*schema.Column{ProductsColumns[18]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProductSpecificationsColumns holds the columns for the "product_specifications" table.
	ProductSpecificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "sub_spec", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "value", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "product_id", Type: field.TypeUUID},
	}
	// ProductSpecificationsTable holds the schema information for the "product_specifications" table.
	ProductSpecificationsTable = &schema.Table{
		Name:       "product_specifications",
		Columns:    ProductSpecificationsColumns,
		PrimaryKey: []*schema.Column{ProductSpecificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "product_specifications_products_specifications",
				Columns:    []*schema.Column{ProductSpecificationsColumns[4]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SellerDetailsColumns holds the columns for the "seller_details" table.
	SellerDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "gem_seller_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "company_name", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "contact_no", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 254},
		{Name: "address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "msme_registration_number", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "gstin", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "contract_id", Type: field.TypeUUID, Unique: true},
	}
	// SellerDetailsTable holds the schema information for the "seller_details" table.
	SellerDetailsTable = &schema.Table{
		Name:       "seller_details",
		Columns:    SellerDetailsColumns,
		PrimaryKey: []*schema.Column{SellerDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "seller_details_contracts_seller",
				Columns:    []*schema.Column{SellerDetailsColumns[8]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SourceFilesColumns holds the columns for the "source_files" table.
	SourceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "doc_type", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// SourceFilesTable holds the schema information for the "source_files" table.
	SourceFilesTable = &schema.Table{
		Name:       "source_files",
		Columns:    SourceFilesColumns,
		PrimaryKey: []*schema.Column{SourceFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourcefile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SourceFilesColumns[2]},
			},
			{
				Name:    "sourcefile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SourceFilesColumns[7]},
			},
		},
	}
	// TermsAndConditionsColumns holds the columns for the "terms_and_conditions" table.
	TermsAndConditionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "clause_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// TermsAndConditionsTable holds the schema information for the "terms_and_conditions" table.
	TermsAndConditionsTable = &schema.Table{
		Name:       "terms_and_conditions",
		Columns:    TermsAndConditionsColumns,
		PrimaryKey: []*schema.Column{TermsAndConditionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "terms_and_conditions_contracts_terms",
				Columns:    []*schema.Column{TermsAndConditionsColumns[2]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BidsTable,
		BuyerDetailsTable,
		ConsigneeDetailsTable,
		ContractsTable,
		EpbgDetailsTable,
		ExtractJobsTable,
		FinancialApprovalsTable,
		OrganisationDetailsTable,
		PayingAuthoritiesTable,
		ProductsTable,
		ProductSpecificationsTable,
		SellerDetailsTable,
		SourceFilesTable,
		TermsAndConditionsTable,
	}
)

func init() {
	BidsTable.Annotation = &entsql.Annotation{
		Table: "bids",
	}
	BuyerDetailsTable.ForeignKeys[0].RefTable = ContractsTable
	BuyerDetailsTable.Annotation = &entsql.Annotation{
		Table: "buyer_details",
	}
	ConsigneeDetailsTable.ForeignKeys[0].RefTable = ProductsTable
	ConsigneeDetailsTable.Annotation = &entsql.Annotation{
		Table: "consignee_details",
	}
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	EpbgDetailsTable.ForeignKeys[0].RefTable = ContractsTable
	EpbgDetailsTable.Annotation = &entsql.Annotation{
		Table: "epbg_details",
	}
	ExtractJobsTable.ForeignKeys[0].RefTable = BidsTable
	ExtractJobsTable.ForeignKeys[1].RefTable = ContractsTable
	ExtractJobsTable.ForeignKeys[2].RefTable = SourceFilesTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	FinancialApprovalsTable.ForeignKeys[0].RefTable = ContractsTable
	FinancialApprovalsTable.Annotation = &entsql.Annotation{
		Table: "financial_approvals",
	}
	OrganisationDetailsTable.ForeignKeys[0].RefTable = ContractsTable
	OrganisationDetailsTable.Annotation = &entsql.Annotation{
		Table: "organisation_details",
	}
	PayingAuthoritiesTable.ForeignKeys[0].RefTable = ContractsTable
	PayingAuthoritiesTable.Annotation = &entsql.Annotation{
		Table: "paying_authorities",
	}
	ProductsTable.ForeignKeys[0].RefTable = ContractsTable
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	ProductSpecificationsTable.ForeignKeys[0].RefTable = ProductsTable
	ProductSpecificationsTable.Annotation = &entsql.Annotation{
		Table: "product_specifications",
	}
	SellerDetailsTable.ForeignKeys[0].RefTable = ContractsTable
	SellerDetailsTable.Annotation = &entsql.Annotation{
		Table: "seller_details",
	}
	SourceFilesTable.Annotation = &entsql.Annotation{
		Table: "source_files",
	}
	TermsAndConditionsTable.ForeignKeys[0].RefTable = ContractsTable
	TermsAndConditionsTable.Annotation = &entsql.Annotation{
		Table: "terms_and_conditions",
	}
}
