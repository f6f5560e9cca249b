package web

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// listingSchema validates inbound listing submissions at the API edge.
// It only pins down the fields a submission cannot do without; the
// normalization layer backfills everything else, so the schema stays
// deliberately loose about optional and historical fields.
const listingSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["ListingName", "ListingType", "Gender", "Area"],
	"properties": {
		"ListingName": {"type": "string", "minLength": 1},
		"ListingType": {"enum": ["Hostel", "PG", "Flat", "Mess"]},
		"Gender": {"enum": ["Boys", "Girls", "Unisex"]},
		"Area": {"type": "string", "minLength": 1},
		"RentSingle": {"type": ["number", "string"]},
		"RentDouble": {"type": ["number", "string"]},
		"ElectricityCharges": {"type": ["number", "string"]},
		"Maintenance": {"type": ["number", "string"]},
		"ParentsStayCharge": {"type": ["number", "string"]},
		"Facilities": {"type": "array", "items": {"type": "string"}},
		"InstituteDistanceMatrix": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"distance": {"type": ["number", "string"]}
				}
			}
		}
	}
}`

var compiledListingSchema = jsonschema.MustCompileString("listing.json", listingSchema)

// validateSubmission checks an inbound listing payload against the
// schema. Returns a caller-facing message on failure.
func validateSubmission(body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("body is not valid JSON")
	}
	if err := compiledListingSchema.Validate(v); err != nil {
		return fmt.Errorf("invalid listing: %v", err)
	}
	return nil
}
