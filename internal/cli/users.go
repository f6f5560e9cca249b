package cli

import (
	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE:  runUsers,
	}
}

func runUsers(cmd *cobra.Command, args []string) error {
	svc, db, err := newUserService()
	if err != nil {
		return err
	}
	defer closeDB(db)

	users := svc.Users()
	for i := range users {
		users[i] = users[i].Public()
	}

	if isJSON() {
		return printJSON(users)
	}

	return printUserTable(users)
}
