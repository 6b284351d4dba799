package index

import (
	"database/sql"
	"os"
	"path"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/jaym/kapchunk/loader"
)

type preparedStatementKey string

const (
	insertMediaStmt preparedStatementKey = "insertMediaStmt"
	selectMediaStmt preparedStatementKey = "selectMediaStmt"
	insertChunkStmt preparedStatementKey = "insertChunkStmt"
	insertFTSStmt   preparedStatementKey = "insertFTSStmt"
)

// IndexBuilder writes chunks into a fresh SQLite index. The index is built
// in a temporary database and moved into place by Build, so a crashed
// build never leaves a half-written index behind.
type IndexBuilder struct {
	db                 *sql.DB
	preparedStatements map[preparedStatementKey]*sql.Stmt
	outputDatabasePath string
	tmpDatabasePath    string
}

func NewIndexBuilder(dbPath string) (*IndexBuilder, error) {
	dbPathDirName := path.Dir(dbPath)
	tmpDbPath := path.Join(dbPathDirName, "tmp.db")
	_, err := os.Stat(tmpDbPath)
	if err == nil {
		// Remove the temporary database
		err = os.Remove(tmpDbPath)
		if err != nil {
			log.Error().Err(err).Msg("Failed to remove temporary database")
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", tmpDbPath)
	if err != nil {
		return nil, err
	}

	schemaBytes, err := SchemaFS.ReadFile("schema.sql")
	if err != nil {
		db.Close() // nolint: errcheck
		log.Error().Err(err).Msg("Failed to read schema.sql")
		return nil, err
	}

	// Execute the schema
	_, err = db.Exec(string(schemaBytes))
	if err != nil {
		db.Close() // nolint: errcheck
		log.Error().Err(err).Msg("Failed to execute schema.sql")
		return nil, err
	}

	preparedStatements := make(map[preparedStatementKey]*sql.Stmt)
	for key, stmt := range map[preparedStatementKey]string{
		insertMediaStmt: `INSERT INTO media (media_id, name) VALUES (?, ?)`,
		selectMediaStmt: `SELECT id FROM media WHERE media_id = ?`,
		insertChunkStmt: `INSERT INTO chunks (media_rowid, caption_id, language_code, start_seconds, timestamp, source, text) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		insertFTSStmt:   `INSERT INTO chunks_fts (rowid, text) VALUES (?, ?)`,
	} {
		preparedStmt, err := db.Prepare(stmt)
		if err != nil {
			db.Close() // nolint: errcheck
			log.Error().Err(err).Msg("Failed to prepare statement")
			return nil, err
		}

		preparedStatements[key] = preparedStmt
	}

	return &IndexBuilder{
		db:                 db,
		preparedStatements: preparedStatements,
		outputDatabasePath: dbPath,
		tmpDatabasePath:    tmpDbPath,
	}, nil
}

// AddChunks inserts chunks into the index, creating media rows as needed.
func (b *IndexBuilder) AddChunks(chunks []loader.Chunk) error {
	for _, chunk := range chunks {
		mediaRowID, err := b.mediaRowID(chunk.MediaID, chunk.Filename)
		if err != nil {
			return err
		}

		res, err := b.preparedStatements[insertChunkStmt].Exec(
			mediaRowID, chunk.CaptionID, chunk.LanguageCode,
			chunk.StartSeconds(), chunk.Timestamp, chunk.Source, chunk.Text)
		if err != nil {
			log.Error().Err(err).Msg("Failed to insert chunk")
			return err
		}

		chunkRowID, err := res.LastInsertId()
		if err != nil {
			log.Error().Err(err).Msg("Failed to get chunk ID")
			return err
		}

		_, err = b.preparedStatements[insertFTSStmt].Exec(chunkRowID, chunk.Text)
		if err != nil {
			log.Error().Err(err).Msg("Failed to index chunk text")
			return err
		}
	}

	return nil
}

func (b *IndexBuilder) mediaRowID(mediaID, name string) (int64, error) {
	var rowID int64
	err := b.preparedStatements[selectMediaStmt].QueryRow(mediaID).Scan(&rowID)
	if err == nil {
		return rowID, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := b.preparedStatements[insertMediaStmt].Exec(mediaID, name)
	if err != nil {
		log.Error().Err(err).Msg("Failed to insert media entry")
		return 0, err
	}
	return res.LastInsertId()
}

// Build compacts the index and moves it to the output path.
func (b *IndexBuilder) Build() error {
	// Compact the database
	_, err := b.db.Exec("VACUUM")
	if err != nil {
		log.Error().Err(err).Msg("Failed to compact the database")
		return err
	}

	err = b.db.Close()
	if err != nil {
		log.Error().Err(err).Msg("Failed to close the database")
		return err
	}

	// Move the temporary database to the output path
	err = os.Rename(b.tmpDatabasePath, b.outputDatabasePath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to move the temporary database")
		return err
	}

	return nil
}
