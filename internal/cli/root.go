// Package cli defines the cobra command tree for erooms.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erooms-in/erooms/internal/auth"
	"github.com/erooms-in/erooms/internal/config"
	"github.com/erooms-in/erooms/internal/listing"
	"github.com/erooms-in/erooms/internal/store"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "erooms",
		Short:         "Manage the eRooms student housing marketplace",
		Long:          "Manage the eRooms marketplace for student housing in Kota. Browse and filter listings, moderate submissions, and serve the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/erooms/erooms.db)")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newApproveCmd(),
		newRemoveCmd(),
		newSeedCmd(),
		newUsersCmd(),
		newConfigCmd(),
		newStatusCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openStore opens the SQLite-backed store using the --db flag or the
// default path. The caller owns closing the returned database.
func openStore() (*store.SQLite, *sql.DB, error) {
	path := flagDB
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return store.NewSQLite(db), db, nil
}

// newListingRepo opens the store and builds the listing repository over
// it, together with the config service the repository normalizes with.
func newListingRepo() (*listing.Repository, *sql.DB, error) {
	st, db, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return listing.NewRepository(st, config.NewService(st)), db, nil
}

// newUserService opens the store and builds the user service over it.
func newUserService() (*auth.Service, *sql.DB, error) {
	st, db, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return auth.NewService(st), db, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
