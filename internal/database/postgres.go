// Package database persists parsed CWR files and their dispatched
// records to Postgres. Grounded on internal/database/postgres.go's
// pgxpool connection, CopyFromSlice bulk-load, and checksum-keyed
// idempotency-check pattern, adapted from trade rows to CWR records.
package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cdacos/allegro/internal/models"
)

// File processing status values stored in cwr_files.status.
const (
	FileStatusProcessing     = "PROCESSING"
	FileStatusDone           = "DONE"
	FileStatusDoneWithErrors = "DONE_WITH_ERRORS"
	FileStatusFatal          = "FATAL"
)

// DBManager is the persistence surface the ingestion service depends
// on, kept as an interface so tests can substitute a fake.
type DBManager interface {
	IsFileAlreadyProcessed(checksum string) (bool, error)
	InsertFileRecord(fileName, checksum string, batchID uuid.UUID) (int, error)
	UpdateFileStatus(fileID int, status string, errs any) error
	InsertRecordsBatch(records []*models.ParsedRecord) error
	FindBySubmitterWorkNum(workNum string) ([]RecordRow, error)
}

// Connect opens a pgxpool against connStr.
func Connect(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return pool, nil
}

// PostgresDBManager is the production DBManager.
type PostgresDBManager struct {
	pool *pgxpool.Pool
	ctx  context.Context
}

// NewPostgresDBManager wraps pool for use within ctx.
func NewPostgresDBManager(ctx context.Context, pool *pgxpool.Pool) *PostgresDBManager {
	return &PostgresDBManager{pool: pool, ctx: ctx}
}

// CreateSchema creates the cwr_files and cwr_records tables if they do
// not already exist, mirroring postgres.go's CreateFileRecordsTable /
// CreateTradeRecordsTable pair.
func (m *PostgresDBManager) CreateSchema() error {
	_, err := m.pool.Exec(m.ctx, `
	CREATE TABLE IF NOT EXISTS cwr_files (
		id SERIAL PRIMARY KEY,
		file_name VARCHAR(255) NOT NULL,
		checksum VARCHAR(64) NOT NULL UNIQUE,
		batch_id UUID NOT NULL,
		processed_at TIMESTAMP NOT NULL DEFAULT now(),
		status VARCHAR(20) NOT NULL CHECK (status IN ('PROCESSING', 'DONE', 'DONE_WITH_ERRORS', 'FATAL')),
		errors JSONB
	);`)
	if err != nil {
		return fmt.Errorf("error creating cwr_files table: %w", err)
	}

	_, err = m.pool.Exec(m.ctx, `
	CREATE TABLE IF NOT EXISTS cwr_records (
		id BIGSERIAL PRIMARY KEY,
		file_id INTEGER NOT NULL REFERENCES cwr_files(id),
		batch_id UUID NOT NULL,
		line_num INTEGER NOT NULL,
		tag VARCHAR(3) NOT NULL,
		transaction_sequence_num VARCHAR(8),
		record_sequence_num VARCHAR(8),
		raw_line TEXT NOT NULL,
		warnings JSONB
	);`)
	if err != nil {
		return fmt.Errorf("error creating cwr_records table: %w", err)
	}

	_, err = m.pool.Exec(m.ctx, `
	CREATE INDEX IF NOT EXISTS idx_cwr_records_file_id ON cwr_records (file_id);
	`)
	if err != nil {
		return fmt.Errorf("error creating cwr_records index: %w", err)
	}

	return nil
}

// IsFileAlreadyProcessed reports whether a file with this checksum has
// already completed successfully, the idempotent-reingest guard.
func (m *PostgresDBManager) IsFileAlreadyProcessed(checksum string) (bool, error) {
	var id int
	err := m.pool.QueryRow(m.ctx, `
		SELECT id FROM cwr_files WHERE checksum = $1 AND status IN ('DONE', 'DONE_WITH_ERRORS')`,
		checksum).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error finding file by checksum: %w", err)
	}
	return true, nil
}

// InsertFileRecord creates the cwr_files row for a newly-dispatched
// ingestion job and returns its id.
func (m *PostgresDBManager) InsertFileRecord(fileName, checksum string, batchID uuid.UUID) (int, error) {
	var fileID int
	err := m.pool.QueryRow(m.ctx, `
		INSERT INTO cwr_files (file_name, checksum, batch_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		fileName, checksum, batchID, FileStatusProcessing).Scan(&fileID)
	if err != nil {
		return 0, fmt.Errorf("error inserting file record: %w", err)
	}
	return fileID, nil
}

// UpdateFileStatus finalizes a file's status and attaches any
// collected errors as JSON.
func (m *PostgresDBManager) UpdateFileStatus(fileID int, status string, errs any) error {
	payload, err := json.Marshal(errs)
	if err != nil {
		return fmt.Errorf("error marshaling file errors: %w", err)
	}
	_, err = m.pool.Exec(m.ctx, `
		UPDATE cwr_files SET status = $1, errors = $2 WHERE id = $3`,
		status, payload, fileID)
	if err != nil {
		return fmt.Errorf("error updating file status: %w", err)
	}
	return nil
}

// InsertRecordsBatch bulk-loads a batch of parsed records via
// pgx.CopyFrom, matching CopyTradesIntoStagingTable's COPY-based
// bulk-insert idiom.
func (m *PostgresDBManager) InsertRecordsBatch(records []*models.ParsedRecord) error {
	columnNames := []string{
		"file_id", "batch_id", "line_num", "tag",
		"transaction_sequence_num", "record_sequence_num", "raw_line", "warnings",
	}

	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		warningsJSON, err := json.Marshal(rec.Warnings)
		if err != nil {
			return fmt.Errorf("error marshaling warnings for line %d: %w", rec.LineNum, err)
		}
		rows[i] = []interface{}{
			rec.FileID, rec.BatchID, rec.LineNum, rec.Tag,
			rec.TransactionSequenceNum, rec.RecordSequenceNum, rec.RawLine, warningsJSON,
		}
	}

	_, err := m.pool.CopyFrom(m.ctx, pgx.Identifier{"cwr_records"}, columnNames, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("error copying records batch: %w", err)
	}
	return nil
}

// RecordRow is one cwr_records row as returned by a query.
type RecordRow struct {
	FileID  int
	LineNum int
	Tag     string
	RawLine string
}

// FindBySubmitterWorkNum looks up every record whose raw line's
// submitter-work-number field (columns 19:33 on NWR/REV/ISW/EXC) equals
// workNum, backing the HTTP query surface's work lookup.
func (m *PostgresDBManager) FindBySubmitterWorkNum(workNum string) ([]RecordRow, error) {
	rows, err := m.pool.Query(m.ctx, `
		SELECT file_id, line_num, tag, raw_line
		FROM cwr_records
		WHERE tag IN ('NWR', 'REV', 'ISW', 'EXC')
		  AND substring(raw_line from 20 for 14) = $1
		ORDER BY file_id, line_num`,
		workNum)
	if err != nil {
		return nil, fmt.Errorf("error querying by submitter work number: %w", err)
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		var r RecordRow
		if err := rows.Scan(&r.FileID, &r.LineNum, &r.Tag, &r.RawLine); err != nil {
			return nil, fmt.Errorf("error scanning record row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}
	return out, nil
}
