package listing

// Seed returns the starter listings written to storage on first load.
func Seed() []Listing {
	return []Listing{
		{
			ID:               "1",
			OwnerID:          "owner",
			ListingName:      "Raj Residency Elite",
			ListingType:      TypeHostel,
			Gender:           GenderBoys,
			OwnerName:        "Rajesh Sharma",
			OwnerWhatsApp:    "919876543210",
			WardenName:       "Suresh Kumar",
			EmergencyContact: "919123456789",
			OwnerEmail:       "contact@rajresidency.com",

			Area:               "Landmark City (Kunadi)",
			FullAddress:        "Plot 45, Sector B, Landmark City, Kunadi, Kota, Rajasthan",
			GoogleMapsPlusCode: "6VG5+XG Kota, Rajasthan",
			InstituteDistances: []DistanceEntry{
				{Name: "Allen Samyak", Distance: 0.2},
				{Name: "Allen Sangyan", Distance: 0.5},
				{Name: "Allen Supath", Distance: 1.2},
			},

			RentSingle:         14500,
			RentDouble:         8500,
			SecurityTerms:      "1 Month Advance Security (Refundable)",
			ElectricityCharges: 12,
			Maintenance:        2000,
			ParentsStayCharge:  500,

			Facilities: []string{"AC", "Attached Washroom", "Geyser", "Laundry", "Biometric Entry", "Mess Facility"},

			PhotoMain:     "https://picsum.photos/seed/hostel1/1200/800",
			PhotoRoom:     "https://picsum.photos/seed/room1/1200/800",
			PhotoWashroom: "https://picsum.photos/seed/wash1/1200/800",

			ApprovalStatus: StatusApproved,
		},
		{
			ID:               "2",
			OwnerID:          "owner_alt",
			ListingName:      "Gargi Kanya Niwas",
			ListingType:      TypePG,
			Gender:           GenderGirls,
			OwnerName:        "Sunita Garg",
			OwnerWhatsApp:    "918822334455",
			WardenName:       "Mamta Devi",
			EmergencyContact: "918877665544",
			OwnerEmail:       "info@garginiwas.com",

			Area:               "Talwandi",
			FullAddress:        "House 12-A, Talwandi, Near Commerce College Road, Kota",
			GoogleMapsPlusCode: "5VPX+W3 Kota, Rajasthan",
			InstituteDistances: []DistanceEntry{
				{Name: "Allen Safalya", Distance: 0.4},
				{Name: "Allen Satyarth", Distance: 0.8},
			},

			RentSingle:         12000,
			RentDouble:         7000,
			SecurityTerms:      "5000/- Security Amount",
			ElectricityCharges: 10,
			Maintenance:        1500,
			ParentsStayCharge:  300,

			Facilities: []string{"CCTV", "RO Water", "Laundry", "Mess Facility", "Study Table"},

			PhotoMain:     "https://picsum.photos/seed/hostel2/1200/800",
			PhotoRoom:     "https://picsum.photos/seed/room2/1200/800",
			PhotoWashroom: "https://picsum.photos/seed/wash2/1200/800",

			ApprovalStatus: StatusApproved,
		},
	}
}
