package kapchunk

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jaym/kapchunk/api"
	"github.com/jaym/kapchunk/index"
)

var serveCmd = &cobra.Command{
	Use:  "serve",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		dbPath, _ := cmd.Flags().GetString("db")

		if addr == "" {
			cfg, err := LoadConfig()
			cobra.CheckErr(err)
			addr = cfg.Server.Listen
		}
		if addr == "" {
			addr = ":8991"
		}

		db, err := index.OpenDatabase(dbPath)
		cobra.CheckErr(err)

		httpHandler := api.NewApiHandler(db)

		log.Info().Str("addr", addr).Msg("Listening")
		err = http.ListenAndServe(addr, httpHandler)
		cobra.CheckErr(err)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "address to listen on")
	serveCmd.Flags().String("db", "chunks.db", "path to the chunk index")
}
