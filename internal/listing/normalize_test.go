package listing

import (
	"encoding/json"
	"reflect"
	"testing"
)

var testInstitutes = []string{"Allen Samyak", "PW Vidyapeeth"}

func TestDecodeEmptyObject(t *testing.T) {
	l := Decode(json.RawMessage(`{}`), testInstitutes)

	if l.ApprovalStatus != StatusPending {
		t.Errorf("status = %q, want Pending", l.ApprovalStatus)
	}
	if l.Facilities == nil {
		t.Error("facilities must never be nil after decode")
	}
	if len(l.Facilities) != 0 {
		t.Errorf("facilities = %v, want empty", l.Facilities)
	}
	want := []DistanceEntry{
		{Name: "Allen Samyak", Distance: 1.0},
		{Name: "PW Vidyapeeth", Distance: 1.0},
	}
	if !reflect.DeepEqual(l.InstituteDistances, want) {
		t.Errorf("distances = %v, want %v", l.InstituteDistances, want)
	}
	if l.RentSingle != 0 || l.RentDouble != 0 {
		t.Errorf("rents = %v/%v, want 0/0", l.RentSingle, l.RentDouble)
	}
}

func TestDecodeNotAnObject(t *testing.T) {
	for _, raw := range []string{`"just a string"`, `42`, `null`, `[1,2,3]`} {
		l := Decode(json.RawMessage(raw), testInstitutes)
		if l.Facilities == nil || l.InstituteDistances == nil {
			t.Errorf("Decode(%s): collections must be backfilled", raw)
		}
		if l.ApprovalStatus != StatusPending {
			t.Errorf("Decode(%s): status = %q, want Pending", raw, l.ApprovalStatus)
		}
	}
}

func TestDecodeFieldCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(t *testing.T, l Listing)
	}{
		{
			name: "string rent is coerced",
			raw:  `{"RentDouble": "8500"}`,
			want: func(t *testing.T, l Listing) {
				if l.RentDouble != 8500 {
					t.Errorf("RentDouble = %v, want 8500", l.RentDouble)
				}
			},
		},
		{
			name: "unparseable rent defaults to zero",
			raw:  `{"RentDouble": "lots"}`,
			want: func(t *testing.T, l Listing) {
				if l.RentDouble != 0 {
					t.Errorf("RentDouble = %v, want 0", l.RentDouble)
				}
			},
		},
		{
			name: "null rent defaults to zero",
			raw:  `{"Maintenance": null}`,
			want: func(t *testing.T, l Listing) {
				if l.Maintenance != 0 {
					t.Errorf("Maintenance = %v, want 0", l.Maintenance)
				}
			},
		},
		{
			name: "wrong-typed name defaults to empty",
			raw:  `{"ListingName": 7}`,
			want: func(t *testing.T, l Listing) {
				if l.ListingName != "" {
					t.Errorf("ListingName = %q, want empty", l.ListingName)
				}
			},
		},
		{
			name: "facilities keeps only strings",
			raw:  `{"Facilities": ["AC", 3, null, "WiFi"]}`,
			want: func(t *testing.T, l Listing) {
				if !reflect.DeepEqual(l.Facilities, []string{"AC", "WiFi"}) {
					t.Errorf("Facilities = %v", l.Facilities)
				}
			},
		},
		{
			name: "non-array facilities defaults to empty",
			raw:  `{"Facilities": "AC"}`,
			want: func(t *testing.T, l Listing) {
				if len(l.Facilities) != 0 {
					t.Errorf("Facilities = %v, want empty", l.Facilities)
				}
			},
		},
		{
			name: "matrix entries coerced per field",
			raw:  `{"InstituteDistanceMatrix": [{"name": "Allen Samyak", "distance": "0.2"}, "junk", {"name": 9}]}`,
			want: func(t *testing.T, l Listing) {
				want := []DistanceEntry{
					{Name: "Allen Samyak", Distance: 0.2},
					{Name: "", Distance: 0},
				}
				if !reflect.DeepEqual(l.InstituteDistances, want) {
					t.Errorf("distances = %v, want %v", l.InstituteDistances, want)
				}
			},
		},
		{
			name: "non-array matrix gets institute defaults",
			raw:  `{"InstituteDistanceMatrix": {"Allen Samyak": 0.2}}`,
			want: func(t *testing.T, l Listing) {
				if len(l.InstituteDistances) != len(testInstitutes) {
					t.Errorf("distances = %v, want one per institute", l.InstituteDistances)
				}
			},
		},
		{
			name: "approval status preserved",
			raw:  `{"ApprovalStatus": "Approved"}`,
			want: func(t *testing.T, l Listing) {
				if l.ApprovalStatus != StatusApproved {
					t.Errorf("status = %q, want Approved", l.ApprovalStatus)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Decode(json.RawMessage(tt.raw), testInstitutes))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []Listing{
		{},
		{Facilities: []string{"AC"}, ApprovalStatus: StatusApproved},
		Decode(json.RawMessage(`{"RentDouble": 16000}`), testInstitutes),
		Seed()[0],
	}

	for i, in := range inputs {
		once := Normalize(in, testInstitutes)
		twice := Normalize(once, testInstitutes)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("input %d: normalize not idempotent:\nonce:  %+v\ntwice: %+v", i, once, twice)
		}
	}
}

func TestNormalizePreservesPresentValues(t *testing.T) {
	in := Seed()[1]
	out := Normalize(in, testInstitutes)
	if !reflect.DeepEqual(in, out) {
		t.Errorf("normalize changed a fully populated record:\nin:  %+v\nout: %+v", in, out)
	}
}

func TestDecodeMissingFacilitiesIsSafeForPills(t *testing.T) {
	// A record persisted without Facilities must evaluate the AC pill
	// to false, not panic.
	l := Decode(json.RawMessage(`{"ApprovalStatus": "Approved"}`), testInstitutes)
	if matchesPill(l, PillAC) {
		t.Error("AC pill matched a record with no facilities")
	}
}
