package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/erooms-in/erooms/internal/auth"
	appconfig "github.com/erooms-in/erooms/internal/config"
	"github.com/erooms-in/erooms/internal/listing"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListingTable prints listings as a formatted table.
func printListingTable(listings []listing.Listing) error {
	if len(listings) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tTYPE\tGENDER\tAREA\tDOUBLE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t----\t------\t----\t------\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range listings {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(l.ID, 10), truncate(l.ListingName, 30), l.ListingType,
			l.Gender, truncate(l.Area, 24), formatRent(l.RentDouble),
			l.ApprovalStatus); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d listings\n", len(listings))
	return nil
}

// printListingDetail prints a single listing in text format.
func printListingDetail(l listing.Listing) {
	fmt.Printf("%s (%s)\n", l.ListingName, l.ID)
	fmt.Printf("  Type:     %s, %s\n", l.ListingType, l.Gender)
	fmt.Printf("  Area:     %s\n", l.Area)
	if l.FullAddress != "" {
		fmt.Printf("  Address:  %s\n", l.FullAddress)
	}
	fmt.Printf("  Rent:     single %s, double %s\n", formatRent(l.RentSingle), formatRent(l.RentDouble))
	if l.OwnerName != "" {
		fmt.Printf("  Owner:    %s (%s)\n", l.OwnerName, l.OwnerWhatsApp)
	}
	if len(l.Facilities) > 0 {
		fmt.Printf("  Features: %s\n", strings.Join(l.Facilities, ", "))
	}
	if len(l.InstituteDistances) > 0 {
		fmt.Println("  Nearby:")
		for _, d := range l.InstituteDistances {
			fmt.Printf("    %s (%.1f km)\n", d.Name, d.Distance)
		}
	}
	fmt.Printf("  Status:   %s\n", l.ApprovalStatus)
}

// printUserTable prints registered users as a formatted table.
func printUserTable(users []auth.User) error {
	if len(users) == 0 {
		fmt.Println("No registered users.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, u := range users {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(u.ID, 10), u.Username, u.Email, u.Role, u.Status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d users\n", len(users))
	return nil
}

// printAppConfig prints the application configuration in text format.
func printAppConfig(cfg appconfig.AppConfig) {
	fmt.Printf("%s: %s\n", cfg.SiteName, cfg.Tagline)
	fmt.Printf("  Maintenance:   %t\n", cfg.MaintenanceMode)
	fmt.Printf("  Registrations: %t\n", cfg.AllowNewRegistrations)
	fmt.Printf("  Support:       %s / %s\n", cfg.SupportPhone, cfg.SupportEmail)
	fmt.Printf("  Areas:         %s\n", strings.Join(cfg.Areas, ", "))
	fmt.Printf("  Institutes:    %s\n", strings.Join(cfg.Institutes, ", "))
	fmt.Printf("  Facilities:    %s\n", strings.Join(cfg.Facilities, ", "))
	if cfg.LastUpdated != "" {
		fmt.Printf("  Updated:       %s\n", cfg.LastUpdated)
	}
}

// formatRent formats a rupee amount, using "-" for an unset value.
func formatRent(amount float64) string {
	if amount <= 0 {
		return "-"
	}
	return fmt.Sprintf("₹%.0f", amount)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
