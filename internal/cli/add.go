package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/erooms-in/erooms/internal/listing"
)

func newAddCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a listing from JSON",
		Long:  "Read a listing as JSON from a file or stdin, normalize it, and store it pending approval.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file to read (default: stdin)")

	return cmd
}

func runAdd(file string) error {
	var (
		data []byte
		err  error
	)
	if file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("reading listing: %w", err)
	}

	var l listing.Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return fmt.Errorf("parsing listing: %w", err)
	}
	if l.ListingName == "" {
		return fmt.Errorf("listing needs a ListingName")
	}
	if l.ListingType != "" && !listing.ValidType(string(l.ListingType)) {
		return fmt.Errorf("unknown listing type %q", l.ListingType)
	}
	if l.Gender != "" && !listing.ValidGender(string(l.Gender)) {
		return fmt.Errorf("unknown gender %q", l.Gender)
	}

	repo, db, err := newListingRepo()
	if err != nil {
		return err
	}
	defer closeDB(db)

	added, err := repo.Add(l)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(added)
	}

	fmt.Println("Listing added.")
	printListingDetail(added)
	return nil
}
