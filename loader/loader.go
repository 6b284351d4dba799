// Package loader turns the caption tracks of remote media entries into
// fixed-duration text chunks with provenance metadata.
package loader

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jaym/kapchunk/fetch"
	"github.com/jaym/kapchunk/kaltura"
	"github.com/jaym/kapchunk/srt"
)

// DefaultChunkMinutes is the window length used when none is configured.
const DefaultChunkMinutes = 2

// DefaultLanguages are the English dialects from ISO 639-1, ordered by
// similarity to en-us. Used when no language allow-list is configured.
var DefaultLanguages = []string{
	"en-us", "en", "en-ca", "en-gb", "en-ie", "en-au", "en-nz", "en-bz",
	"en-jm", "en-ph", "en-tt", "en-za", "en-zw",
}

// MediaService is the subset of the media platform API the loader needs.
// *kaltura.Client implements it.
type MediaService interface {
	ListMedia(ctx context.Context, filter kaltura.MediaFilter) ([]kaltura.MediaEntry, error)
	ListCaptionAssets(ctx context.Context, entryID string) ([]kaltura.CaptionAsset, error)
	CaptionAssetURL(ctx context.Context, captionID string) (string, error)
}

type Config struct {
	// Criterion selects the media entries to process.
	Criterion Criterion
	// URLTemplate builds chunk source URLs. It must contain the fields
	// "{mediaId}" and "{startSeconds}".
	URLTemplate string `mapstructure:"url_template"`
	// Languages is the caption language allow-list, matched
	// case-insensitively. Empty means DefaultLanguages.
	Languages []string `mapstructure:"languages"`
	// AllLanguages disables language filtering entirely.
	AllLanguages bool `mapstructure:"all_languages"`
	// ChunkMinutes is the window length. Zero means DefaultChunkMinutes;
	// negative values are a configuration error.
	ChunkMinutes int `mapstructure:"chunk_minutes"`
}

// Loader loads chunked captions for the media entries matching a selection
// criterion. Processing is synchronous: one entry at a time, one track at
// a time. The first failure ends the load.
type Loader struct {
	service   MediaService
	fetcher   fetch.Fetcher
	criterion Criterion
	template  string
	chunkSize time.Duration
	// languages holds the lower-cased allow-list; nil means all languages.
	languages map[string]struct{}
}

func New(service MediaService, fetcher fetch.Fetcher, cfg Config) (*Loader, error) {
	if err := cfg.Criterion.validate(); err != nil {
		return nil, err
	}
	if err := validateURLTemplate(cfg.URLTemplate); err != nil {
		return nil, err
	}
	if cfg.ChunkMinutes < 0 {
		return nil, &ConfigurationError{Msg: "chunk minutes must be positive"}
	}

	chunkMinutes := cfg.ChunkMinutes
	if chunkMinutes == 0 {
		chunkMinutes = DefaultChunkMinutes
	}

	var languages map[string]struct{}
	if !cfg.AllLanguages {
		allowed := cfg.Languages
		if len(allowed) == 0 {
			allowed = DefaultLanguages
		}
		languages = make(map[string]struct{}, len(allowed))
		for _, code := range allowed {
			languages[strings.ToLower(code)] = struct{}{}
		}
	}

	return &Loader{
		service:   service,
		fetcher:   fetcher,
		criterion: cfg.Criterion,
		template:  cfg.URLTemplate,
		chunkSize: time.Duration(chunkMinutes) * time.Minute,
		languages: languages,
	}, nil
}

// Load resolves the configured criterion and returns the chunks of every
// selected caption track, grouped by media entry in lookup order. An
// unavailable track aborts the whole load; chunks from earlier tracks are
// not returned.
func (l *Loader) Load(ctx context.Context) ([]Chunk, error) {
	entries, err := l.service.ListMedia(ctx, l.criterion.mediaFilter())
	if err != nil {
		return nil, &RemoteServiceError{Op: "listing media entries", Err: err}
	}

	var chunks []Chunk
	for _, entry := range entries {
		entryChunks, err := l.loadEntry(ctx, entry)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, entryChunks...)
	}

	return chunks, nil
}

func (l *Loader) loadEntry(ctx context.Context, entry kaltura.MediaEntry) ([]Chunk, error) {
	assets, err := l.service.ListCaptionAssets(ctx, entry.ID)
	if err != nil {
		return nil, &RemoteServiceError{Op: "listing caption assets for " + entry.ID, Err: err}
	}

	var chunks []Chunk
	for _, asset := range assets {
		if !l.languageAllowed(asset.LanguageCode) {
			continue
		}
		if asset.Format != kaltura.CaptionFormatSRT {
			log.Debug().
				Str("captionId", asset.ID).
				Str("format", asset.Format).
				Msg("skipping caption asset with unsupported format")
			continue
		}

		cues, err := l.fetchCues(ctx, asset.ID)
		if err != nil {
			return nil, err
		}

		windows := NewWindows(cues, l.chunkSize)
		for windows.Next() {
			chunks = append(chunks, Chunk{
				Text:          windows.Cues().Text(),
				Source:        expandURLTemplate(l.template, entry.ID, int(windows.Start()/time.Second)),
				Filename:      entry.Name,
				MediaID:       entry.ID,
				Timestamp:     FormatTimestamp(windows.Start()),
				CaptionID:     asset.ID,
				LanguageCode:  asset.LanguageCode,
				CaptionFormat: "SRT",
				Start:         windows.Start(),
			})
		}
	}

	return chunks, nil
}

func (l *Loader) fetchCues(ctx context.Context, captionID string) (srt.Cues, error) {
	captionURL, err := l.service.CaptionAssetURL(ctx, captionID)
	if err != nil {
		return nil, &CaptionUnavailableError{CaptionID: captionID, Err: err}
	}
	if captionURL == "" {
		return nil, &CaptionUnavailableError{CaptionID: captionID, Err: errors.New("no caption URL returned")}
	}

	raw, err := l.fetcher.Fetch(ctx, captionURL)
	if err != nil {
		return nil, &CaptionUnavailableError{CaptionID: captionID, Err: err}
	}

	cues, err := srt.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, &CaptionUnavailableError{CaptionID: captionID, Err: err}
	}

	return cues, nil
}

func (l *Loader) languageAllowed(code string) bool {
	if l.languages == nil {
		return true
	}
	_, ok := l.languages[strings.ToLower(code)]
	return ok
}
