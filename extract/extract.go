// Package extract pulls subtitle streams out of local media files so they
// can be windowed with the same chunker as remote captions.
package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/rs/zerolog/log"
	ffmpeg_go "github.com/u2takey/ffmpeg-go"

	"github.com/jaym/kapchunk/srt"
)

// DefaultLanguage is the subtitle stream language tag selected when none
// is given.
const DefaultLanguage = "eng"

type ffmpegStreamProbe struct {
	Streams []struct {
		Index     int    `json:"index"`
		CodecType string `json:"codec_type"`
		Tags      struct {
			Language string `json:"language"`
		}
	} `json:"streams"`
}

type ExtractorError struct {
	Msg           string
	ffprobeOutput string
}

func (e *ExtractorError) Error() string {
	return e.Msg
}

func (e *ExtractorError) VerboseError() string {
	return fmt.Sprintf("FFProbe Output:\n%s\n\n%s", e.Msg, e.ffprobeOutput)
}

// Subtitles extracts the subtitle stream tagged with the given language
// from a media file and returns its cues. The stream is written out as SRT
// to a temporary directory and parsed from there.
func Subtitles(inputFilePath string, language string) (srt.Cues, error) {
	if language == "" {
		language = DefaultLanguage
	}

	probeStr, err := ffmpeg_go.Probe(inputFilePath)
	if err != nil {
		return nil, err
	}

	var probe ffmpegStreamProbe
	err = json.Unmarshal([]byte(probeStr), &probe)
	if err != nil {
		return nil, &ExtractorError{
			Msg:           fmt.Sprintf("error unmarshalling ffprobe output: %v", err),
			ffprobeOutput: probeStr,
		}
	}

	subtitlesStream := -1
	for _, stream := range probe.Streams {
		if stream.CodecType == "subtitle" && stream.Tags.Language == language {
			subtitlesStream = stream.Index
			break
		}
	}

	if subtitlesStream == -1 {
		return nil, &ExtractorError{
			Msg:           fmt.Sprintf("could not find %s subtitle stream", language),
			ffprobeOutput: probeStr,
		}
	}

	tmpDir, err := os.MkdirTemp("", "kapchunk")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	log.Info().
		Str("path", inputFilePath).
		Int("stream", subtitlesStream).
		Msg("extracting subtitle stream")

	subtitlesPath := path.Join(tmpDir, "subtitles.srt")
	err = ffmpeg_go.Input(inputFilePath).
		Get(fmt.Sprintf("%d", subtitlesStream)).
		Output(subtitlesPath).
		OverWriteOutput().
		ErrorToStdOut().
		Run()
	if err != nil {
		return nil, &ExtractorError{
			Msg: fmt.Sprintf("failed to run ffmpeg on %s: %v", inputFilePath, err),
		}
	}

	subtitlesFile, err := os.Open(subtitlesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open extracted subtitles: %v", err)
	}
	defer subtitlesFile.Close()

	return srt.Parse(subtitlesFile)
}
