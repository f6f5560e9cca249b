// Package listing provides the listing domain model, the normalization
// of loosely-shaped persisted records, and the filter engine.
package listing

import "github.com/google/uuid"

// Type categorizes a listing.
type Type string

const (
	TypeHostel Type = "Hostel"
	TypePG     Type = "PG"
	TypeFlat   Type = "Flat"
	TypeMess   Type = "Mess"
)

// ValidType returns true if s is a known listing type.
func ValidType(s string) bool {
	switch Type(s) {
	case TypeHostel, TypePG, TypeFlat, TypeMess:
		return true
	}
	return false
}

// Gender is a listing's gender policy.
type Gender string

const (
	GenderBoys   Gender = "Boys"
	GenderGirls  Gender = "Girls"
	GenderUnisex Gender = "Unisex"
)

// ValidGender returns true if s is a known gender policy.
func ValidGender(s string) bool {
	switch Gender(s) {
	case GenderBoys, GenderGirls, GenderUnisex:
		return true
	}
	return false
}

// ApprovalStatus represents where a listing is in the review workflow.
// Owner submissions start Pending and only an admin approval moves them
// to Approved; there is no transition back.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
)

// DistanceEntry is one row of a listing's institute distance matrix.
type DistanceEntry struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"` // kilometers
}

// Listing represents one property entry. JSON field names match the
// historically persisted shape so old blobs round-trip.
type Listing struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`

	ListingName string `json:"ListingName"`
	ListingType Type   `json:"ListingType"`
	Gender      Gender `json:"Gender"`

	OwnerName        string `json:"OwnerName"`
	OwnerWhatsApp    string `json:"OwnerWhatsApp"`
	WardenName       string `json:"WardenName"`
	EmergencyContact string `json:"EmergencyContact"`
	OwnerEmail       string `json:"OwnerEmail"`

	Area               string          `json:"Area"`
	FullAddress        string          `json:"FullAddress"`
	GoogleMapsPlusCode string          `json:"GoogleMapsPlusCode"`
	InstituteDistances []DistanceEntry `json:"InstituteDistanceMatrix"`

	RentSingle         float64 `json:"RentSingle"`
	RentDouble         float64 `json:"RentDouble"`
	SecurityTerms      string  `json:"SecurityTerms"`
	ElectricityCharges float64 `json:"ElectricityCharges"`
	Maintenance        float64 `json:"Maintenance"`
	ParentsStayCharge  float64 `json:"ParentsStayCharge"`

	Facilities []string `json:"Facilities"`

	PhotoMain     string `json:"PhotoMain"`
	PhotoRoom     string `json:"PhotoRoom"`
	PhotoWashroom string `json:"PhotoWashroom"`

	ApprovalStatus ApprovalStatus `json:"ApprovalStatus"`
}

// NewID returns a fresh opaque listing id.
func NewID() string {
	return uuid.NewString()
}

// HasFacility reports whether the listing carries the given facility tag.
// Tags are compared case-sensitively, matching how they are configured.
func (l Listing) HasFacility(tag string) bool {
	for _, f := range l.Facilities {
		if f == tag {
			return true
		}
	}
	return false
}
