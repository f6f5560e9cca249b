package cli

import (
	"github.com/spf13/cobra"

	"github.com/erooms-in/erooms/internal/listing"
)

func newListCmd() *cobra.Command {
	var (
		coaching string
		gender   string
		area     string
		pills    []string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approved listings",
		Long:  "List approved listings, optionally filtered by coaching institute, gender, area, and quick-filter pills. Use --all to include pending submissions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := listing.DefaultCriteria()
			if coaching != "" {
				c.Coaching = coaching
			}
			if gender != "" {
				c.Gender = gender
			}
			if area != "" {
				c.Area = area
			}
			c.ActivePills = pills
			return runList(c, all)
		},
	}

	cmd.Flags().StringVar(&coaching, "coaching", "", "coaching institute to filter by")
	cmd.Flags().StringVar(&gender, "gender", "", "gender to filter by (Boys|Girls|Unisex)")
	cmd.Flags().StringVar(&area, "area", "", "area to filter by")
	cmd.Flags().StringSliceVar(&pills, "pills", nil, "quick-filter pills, e.g. Budget,AC,Near Allen")
	cmd.Flags().BoolVar(&all, "all", false, "include pending submissions")

	return cmd
}

func runList(c listing.Criteria, all bool) error {
	repo, db, err := newListingRepo()
	if err != nil {
		return err
	}
	defer closeDB(db)

	var listings []listing.Listing
	if all {
		listings, err = repo.All()
	} else {
		listings, err = repo.Filtered(c)
	}
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(listings)
	}

	return printListingTable(listings)
}
