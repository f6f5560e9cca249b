package cli

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/erooms-in/erooms/internal/logging"
	"github.com/erooms-in/erooms/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Start the HTTP API serving the listing feed, authentication, and the admin surface.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = getPort()
			}
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "pretty console logs instead of JSON")

	return cmd
}

func runServe(port int, dev bool) error {
	// A missing .env is fine; env vars may come from anywhere.
	_ = godotenv.Load()

	logging.Setup(dev)

	st, db, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB(db)

	srv := web.NewServer(st, getSessionSecret())

	slog.Info("starting server", "port", port)
	return srv.ListenAndServe(port)
}
