package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending listing",
		Long:  "Mark a listing Approved so it appears in the public feed. Approving an already approved listing changes nothing.",
		Args:  cobra.ExactArgs(1),
		RunE:  runApprove,
	}
}

func runApprove(cmd *cobra.Command, args []string) error {
	repo, db, err := newListingRepo()
	if err != nil {
		return err
	}
	defer closeDB(db)

	l, ok, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no listing with id %s", args[0])
	}

	if err := repo.Approve(l.ID); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"id":       l.ID,
			"approved": true,
		})
	}

	fmt.Printf("Listing %q approved.\n", l.ListingName)
	return nil
}
