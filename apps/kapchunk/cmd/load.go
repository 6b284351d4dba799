package kapchunk

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jaym/kapchunk/fetch"
	"github.com/jaym/kapchunk/index"
	"github.com/jaym/kapchunk/kaltura"
	"github.com/jaym/kapchunk/loader"
)

var loadCmd = &cobra.Command{
	Use:  "load",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		indexPath, _ := cmd.Flags().GetString("index")

		cfg, err := LoadConfig()
		cobra.CheckErr(err)

		criterion, err := loader.ParseCriterion(cfg.Loader.FilterType, cfg.Loader.FilterValue)
		cobra.CheckErr(err)

		client := kaltura.NewClient(kaltura.Config{ServiceURL: cfg.Kaltura.ServiceURL})

		ctx := cmd.Context()
		err = client.StartSession(ctx, kaltura.Credentials{
			PartnerID:     cfg.Kaltura.PartnerID,
			AppTokenID:    cfg.Kaltura.AppTokenID,
			AppTokenValue: cfg.Kaltura.AppTokenValue,
		}, time.Duration(cfg.Kaltura.ExpirySeconds)*time.Second)
		cobra.CheckErr(err)

		l, err := loader.New(client, fetch.NewHTTPFetcher(), loader.Config{
			Criterion:    criterion,
			URLTemplate:  cfg.Loader.URLTemplate,
			Languages:    cfg.Loader.Languages,
			AllLanguages: cfg.Loader.AllLanguages,
			ChunkMinutes: cfg.Loader.ChunkMinutes,
		})
		cobra.CheckErr(err)

		chunks, err := l.Load(ctx)
		cobra.CheckErr(err)

		if indexPath == "" {
			o, _ := json.MarshalIndent(chunks, "", "  ")
			cmd.Println(string(o))
			return
		}

		builder, err := index.NewIndexBuilder(indexPath)
		cobra.CheckErr(err)
		cobra.CheckErr(builder.AddChunks(chunks))
		cobra.CheckErr(builder.Build())

		log.Info().Int("chunks", len(chunks)).Str("path", indexPath).Msg("index built")
	},
}

func init() {
	loadCmd.Flags().String("index", "", "build a search index at this path instead of printing chunks")
	rootCmd.AddCommand(loadCmd)
}
