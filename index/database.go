package index

import (
	"context"
	"database/sql"
)

// Database is a read-only handle on a built chunk index.
type Database struct {
	db                 *sql.DB
	preparedStatements map[preparedStatementKey]*sql.Stmt
}

const (
	searchStmt     preparedStatementKey = "searchStmt"
	listChunksStmt preparedStatementKey = "listChunksStmt"
)

func OpenDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	preparedStatements := make(map[preparedStatementKey]*sql.Stmt)
	for key, query := range map[preparedStatementKey]string{
		searchStmt:     `SELECT media.media_id, media.name, chunks.caption_id, chunks.language_code, chunks.start_seconds, chunks.timestamp, chunks.source, chunks.text FROM chunks INNER JOIN chunks_fts ON chunks.id = chunks_fts.rowid INNER JOIN media ON chunks.media_rowid = media.id WHERE chunks_fts MATCH ? LIMIT 100`,
		listChunksStmt: `SELECT media.media_id, media.name, chunks.caption_id, chunks.language_code, chunks.start_seconds, chunks.timestamp, chunks.source, chunks.text FROM chunks INNER JOIN media ON chunks.media_rowid = media.id WHERE media.media_id = ? ORDER BY chunks.caption_id, chunks.start_seconds ASC`,
	} {
		stmt, err := db.Prepare(query)
		if err != nil {
			db.Close() // nolint: errcheck
			return nil, err
		}

		preparedStatements[key] = stmt
	}

	return &Database{
		db:                 db,
		preparedStatements: preparedStatements,
	}, nil
}

type ChunkRecord struct {
	MediaID      string `json:"media_id"`
	Filename     string `json:"filename"`
	CaptionID    string `json:"caption_id"`
	LanguageCode string `json:"language_code"`
	StartSeconds int    `json:"start_seconds"`
	Timestamp    string `json:"timestamp"`
	Source       string `json:"source"`
	Text         string `json:"text"`
}

// Search runs a full-text query over chunk text.
func (d *Database) Search(ctx context.Context, queryString string) ([]ChunkRecord, error) {
	rows, err := d.preparedStatements[searchStmt].QueryContext(ctx, queryString)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanChunkRecords(rows)
}

// ListChunks returns every chunk of a media entry in start-offset order.
func (d *Database) ListChunks(ctx context.Context, mediaID string) ([]ChunkRecord, error) {
	rows, err := d.preparedStatements[listChunksStmt].QueryContext(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanChunkRecords(rows)
}

func scanChunkRecords(rows *sql.Rows) ([]ChunkRecord, error) {
	var results []ChunkRecord
	for rows.Next() {
		var result ChunkRecord
		err := rows.Scan(&result.MediaID, &result.Filename, &result.CaptionID,
			&result.LanguageCode, &result.StartSeconds, &result.Timestamp,
			&result.Source, &result.Text)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, rows.Err()
}

func (d *Database) Close() error {
	return d.db.Close()
}
