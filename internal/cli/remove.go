package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a listing",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	if err := repo.Delete(l.ID); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"id":      l.ID,
			"removed": true,
		})
	}

	fmt.Printf("Listing %q removed.\n", l.ListingName)
	return nil
}
