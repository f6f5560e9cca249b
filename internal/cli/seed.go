package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erooms-in/erooms/internal/listing"
	"github.com/erooms-in/erooms/internal/store"
)

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the starter listings",
		Long:  "Write the starter listing set to storage. Refuses to overwrite existing listings unless --force is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing listings")

	return cmd
}

func runSeed(force bool) error {
	st, db, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if _, ok, err := st.Get(store.KeyListings); err != nil {
		return err
	} else if ok && !force {
		return fmt.Errorf("listings already exist; use --force to overwrite")
	}

	seeded := listing.Seed()
	data, err := json.Marshal(seeded)
	if err != nil {
		return fmt.Errorf("encoding seed listings: %w", err)
	}
	if err := st.Set(store.KeyListings, string(data)); err != nil {
		return fmt.Errorf("writing seed listings: %w", err)
	}

	if isJSON() {
		return printJSON(seeded)
	}

	fmt.Printf("Seeded %d listings.\n", len(seeded))
	return nil
}
