package kapchunk

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaym/kapchunk/extract"
	"github.com/jaym/kapchunk/loader"
)

type localChunk struct {
	Timestamp    string `json:"timestamp"`
	StartSeconds int    `json:"start_seconds"`
	Text         string `json:"text"`
}

var localCmd = &cobra.Command{
	Use:  "local [OPTIONS] input_file",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		language, _ := cmd.Flags().GetString("language")
		chunkMinutes, _ := cmd.Flags().GetInt("chunk-minutes")
		from, _ := cmd.Flags().GetDuration("from")
		to, _ := cmd.Flags().GetDuration("to")

		cues, err := extract.Subtitles(args[0], language)
		cobra.CheckErr(err)

		if to > 0 {
			cues = cues.Slice(from, to)
		} else if from > 0 {
			cues = cues.Slice(from, 1<<62)
		}

		if chunkMinutes <= 0 {
			chunkMinutes = loader.DefaultChunkMinutes
		}

		chunks := []localChunk{}
		windows := loader.NewWindows(cues, time.Duration(chunkMinutes)*time.Minute)
		for windows.Next() {
			chunks = append(chunks, localChunk{
				Timestamp:    loader.FormatTimestamp(windows.Start()),
				StartSeconds: int(windows.Start() / time.Second),
				Text:         windows.Cues().Text(),
			})
		}

		o, _ := json.MarshalIndent(chunks, "", "  ")
		cmd.Println(string(o))
	},
}

func init() {
	localCmd.Flags().String("language", extract.DefaultLanguage, "subtitle stream language tag")
	localCmd.Flags().Int("chunk-minutes", loader.DefaultChunkMinutes, "length of each chunk in minutes")
	localCmd.Flags().Duration("from", 0, "only chunk cues starting at or after this offset")
	localCmd.Flags().Duration("to", 0, "only chunk cues starting before this offset")

	rootCmd.AddCommand(localCmd)
}
