package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show listing details",
		Long:  "Show full details for a listing, pending or approved.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if isJSON() {
		return printJSON(l)
	}

	printListingDetail(l)
	return nil
}
