package listing

import (
	"encoding/json"
	"strconv"
)

// Listing data has shipped in at least five incompatible shapes over
// time. Decode and Normalize are the seam that keeps everything
// downstream schema-agnostic: any field may be missing, null, or the
// wrong type in a persisted blob, and the result is still a fully
// populated record that every filter predicate can dereference.

// defaultDistanceKm is the nominal distance assigned when a record has
// no usable distance matrix.
const defaultDistanceKm = 1.0

// Decode parses one untrusted JSON record into a Listing, substituting
// a default for every absent or malformed field. institutes seeds the
// fallback distance matrix.
func Decode(raw json.RawMessage, institutes []string) Listing {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		data = nil
	}

	l := Listing{
		ID:      jsonString(data, "id"),
		OwnerID: jsonString(data, "ownerId"),

		ListingName: jsonString(data, "ListingName"),
		ListingType: Type(jsonString(data, "ListingType")),
		Gender:      Gender(jsonString(data, "Gender")),

		OwnerName:        jsonString(data, "OwnerName"),
		OwnerWhatsApp:    jsonString(data, "OwnerWhatsApp"),
		WardenName:       jsonString(data, "WardenName"),
		EmergencyContact: jsonString(data, "EmergencyContact"),
		OwnerEmail:       jsonString(data, "OwnerEmail"),

		Area:               jsonString(data, "Area"),
		FullAddress:        jsonString(data, "FullAddress"),
		GoogleMapsPlusCode: jsonString(data, "GoogleMapsPlusCode"),
		InstituteDistances: jsonDistances(data, "InstituteDistanceMatrix"),

		RentSingle:         jsonNumber(data, "RentSingle"),
		RentDouble:         jsonNumber(data, "RentDouble"),
		SecurityTerms:      jsonString(data, "SecurityTerms"),
		ElectricityCharges: jsonNumber(data, "ElectricityCharges"),
		Maintenance:        jsonNumber(data, "Maintenance"),
		ParentsStayCharge:  jsonNumber(data, "ParentsStayCharge"),

		Facilities: jsonStrings(data, "Facilities"),

		PhotoMain:     jsonString(data, "PhotoMain"),
		PhotoRoom:     jsonString(data, "PhotoRoom"),
		PhotoWashroom: jsonString(data, "PhotoWashroom"),

		ApprovalStatus: ApprovalStatus(jsonString(data, "ApprovalStatus")),
	}

	return Normalize(l, institutes)
}

// Normalize backfills the fields a decoded record may be missing. It is
// idempotent: normalizing an already-normalized record changes nothing.
func Normalize(l Listing, institutes []string) Listing {
	if l.InstituteDistances == nil {
		l.InstituteDistances = defaultDistances(institutes)
	}
	if l.Facilities == nil {
		l.Facilities = []string{}
	}
	if l.ApprovalStatus == "" {
		l.ApprovalStatus = StatusPending
	}
	return l
}

// defaultDistances builds one entry per configured institute at the
// nominal distance.
func defaultDistances(institutes []string) []DistanceEntry {
	entries := make([]DistanceEntry, 0, len(institutes))
	for _, name := range institutes {
		entries = append(entries, DistanceEntry{Name: name, Distance: defaultDistanceKm})
	}
	return entries
}

// jsonString returns the string under key, or "" if absent or not a string.
func jsonString(data map[string]json.RawMessage, key string) string {
	raw, ok := data[key]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// jsonNumber coerces the value under key to a float64. JSON numbers are
// taken as-is; numeric strings are parsed the way loose front-end code
// would have coerced them. Anything else is 0.
func jsonNumber(data map[string]json.RawMessage, key string) float64 {
	raw, ok := data[key]
	if !ok {
		return 0
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, perr := strconv.ParseFloat(s, 64); perr == nil {
			return parsed
		}
	}

	return 0
}

// jsonStrings returns the string elements of the array under key.
// A missing or non-array value yields nil (the caller substitutes a
// default); non-string elements are dropped.
func jsonStrings(data map[string]json.RawMessage, key string) []string {
	raw, ok := data[key]
	if !ok {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	out := make([]string, 0, len(elems))
	for _, e := range elems {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// jsonDistances returns the distance matrix under key, or nil when the
// value is absent or not an ordered sequence. Entries that are not
// objects are dropped; entry fields are coerced individually.
func jsonDistances(data map[string]json.RawMessage, key string) []DistanceEntry {
	raw, ok := data[key]
	if !ok {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	out := make([]DistanceEntry, 0, len(elems))
	for _, e := range elems {
		var entry map[string]json.RawMessage
		if err := json.Unmarshal(e, &entry); err != nil {
			continue
		}
		out = append(out, DistanceEntry{
			Name:     jsonString(entry, "name"),
			Distance: jsonNumber(entry, "distance"),
		})
	}
	return out
}
