package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erooms-in/erooms/internal/auth"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the recorded session",
		Long:  "Show which user is recorded as signed in, if any.",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, db, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB(db)

	sessions := auth.NewSessions(st, getSessionSecret())

	u, ok := sessions.Current()
	if !ok {
		if isJSON() {
			return printJSON(map[string]interface{}{"signedIn": false})
		}
		fmt.Println("No one is signed in.")
		return nil
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"signedIn": true,
			"user":     u,
		})
	}

	fmt.Printf("Signed in as %s <%s> (%s)\n", u.Username, u.Email, u.Role)
	return nil
}
