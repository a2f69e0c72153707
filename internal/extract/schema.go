package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildContractJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing ContractFields. Used to validate both freshly
// extracted documents and records imported through the API.
func BuildContractJSONSchema() map[string]any {
	party := func(extra map[string]any) map[string]any {
		props := map[string]any{
			"designation": stringProp(),
			"email":       stringProp(),
			"gstin":       stringProp(),
			"address":     stringProp(),
		}
		for k, v := range extra {
			props[k] = v
		}
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}

	product := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"product_name":           stringProp(),
			"brand":                  stringProp(),
			"brand_type":             stringProp(),
			"catalogue_status":       stringProp(),
			"selling_as":             stringProp(),
			"category_name_quadrant": stringProp(),
			"model":                  stringProp(),
			"hsn_code":               stringProp(),
			"ordered_quantity":       decimalProp(),
			"unit":                   stringProp(),
			"unit_price":             decimalProp(),
			"tax_bifurcation":        decimalProp(),
			"total_price":            decimalProp(),
			"note":                   stringProp(),
		},
	}

	consignee := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"s_no":           map[string]any{"type": "integer", "minimum": 0},
			"designation":    stringProp(),
			"email":          stringProp(),
			"contact":        stringProp(),
			"gstin":          stringProp(),
			"address":        stringProp(),
			"item":           stringProp(),
			"lot_no":         stringProp(),
			"quantity":       map[string]any{"type": "integer", "minimum": 0},
			"delivery_start": dateProp(),
			"delivery_end":   dateProp(),
			"delivery_to":    stringProp(),
		},
	}

	specification := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"category": stringProp(),
			"sub_spec": stringProp(),
			"value":    stringProp(),
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"contract_no":    map[string]any{"type": "string", "minLength": 1},
			"generated_date": dateProp(),
			"organisation": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"type":              stringProp(),
					"ministry":          stringProp(),
					"department":        stringProp(),
					"organisation_name": stringProp(),
					"office_zone":       stringProp(),
				},
			},
			"buyer": party(map[string]any{"contact_no": stringProp()}),
			"financial_approval": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"ifd_concurrence":                map[string]any{"type": "boolean"},
					"admin_approval_designation":     stringProp(),
					"financial_approval_designation": stringProp(),
				},
			},
			"paying_authority": party(map[string]any{
				"role":         stringProp(),
				"payment_mode": stringProp(),
			}),
			"seller": party(map[string]any{
				"gem_seller_id":            stringProp(),
				"company_name":             stringProp(),
				"contact_no":               stringProp(),
				"msme_registration_number": stringProp(),
			}),
			"products":       map[string]any{"type": "array", "items": product},
			"consignees":     map[string]any{"type": "array", "items": consignee},
			"specifications": map[string]any{"type": "array", "items": specification},
			"epbg_detail":    stringProp(),
			"terms":          map[string]any{"type": "array", "items": stringProp()},
		},
		"required": []string{"contract_no"},
	}
}

// BuildBidJSONSchema returns the schema for BidFields.
func BuildBidJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"bid_number":               map[string]any{"type": "string", "minLength": 1},
			"dated":                    dateProp(),
			"beneficiary":              stringProp(),
			"ministry":                 stringProp(),
			"department":               stringProp(),
			"organisation":             stringProp(),
			"office_name":              stringProp(),
			"item_category":            stringProp(),
			"contract_period":          stringProp(),
			"bid_end_datetime":         stringProp(),
			"bid_open_datetime":        stringProp(),
			"bid_offer_validity_days":  map[string]any{"type": "integer", "minimum": 0},
			"delivery_days":            map[string]any{"type": "integer", "minimum": 0},
			"total_quantity":           decimalProp(),
			"estimated_bid_value":      decimalProp(),
			"similar_category":         stringProp(),
			"mse_exemption":            stringProp(),
			"startup_exemption":        stringProp(),
			"mse_purchase_preference":  stringProp(),
			"mii_purchase_preference":  stringProp(),
			"evaluation_method":        stringProp(),
			"inspection_required":      stringProp(),
			"primary_product_category": stringProp(),
			"delivery_address":         stringProp(),
			"scope_of_supply":          stringProp(),
			"option_clause":            stringProp(),
			"source_file":              stringProp(),
		},
		"required": []string{"bid_number"},
	}
}

func stringProp() map[string]any {
	return map[string]any{"type": "string"}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

func decimalProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`}
}

// ValidateAgainstSchema validates "data" against "schemaMap".
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
