// Package models holds the plain data shuttled between the ingestion
// worker pools: jobs in, parsed records and errors out. Grounded on
// b3_quotations/internal/models/models.go's ExtractionChannels /
// ExtractionWaitGroups / FileErrorMap shape, simplified from
// per-reference-date partitioning (trade records partition by trading
// day; a CWR transmission has no such axis) to a single results
// channel per ingestion run.
package models

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// FileJob is one file handed to a parser worker.
type FileJob struct {
	FilePath string
	FileID   int
	BatchID  uuid.UUID
}

// ParsedRecord is one dispatched CWR line, ready for persistence: its
// source position, the record's tag and sequence prefix, the raw line
// (stored verbatim so the host layer never needs to reformat a record
// it didn't modify), and any warnings collected while parsing it.
type ParsedRecord struct {
	FileID                 int
	BatchID                uuid.UUID
	LineNum                int
	Tag                    string
	TransactionSequenceNum string
	RecordSequenceNum      string
	RawLine                string
	Warnings               []warning.Warning
}

// AppError is a non-fatal failure attributed to one file, collected by
// the error worker instead of aborting the run.
type AppError struct {
	FileID  int
	Message string
	Err     error
}

func (e AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("file %d: %s: %v", e.FileID, e.Message, e.Err)
	}
	return fmt.Sprintf("file %d: %s", e.FileID, e.Message)
}

// FileErrorMap accumulates AppErrors per file across concurrent
// workers; capped per file to bound memory against a pathologically
// malformed input.
type FileErrorMap struct {
	Errors map[int][]AppError
	Mu     sync.Mutex
}

// MaxErrorsPerFile is the per-file cap FileErrorMap enforces, matching
// the teacher's ErrorWorker's 100-error backstop.
const MaxErrorsPerFile = 100

// Add records appErr against its FileID, dropping it once that file has
// reached MaxErrorsPerFile.
func (m *FileErrorMap) Add(appErr AppError) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if len(m.Errors[appErr.FileID]) >= MaxErrorsPerFile {
		return
	}
	m.Errors[appErr.FileID] = append(m.Errors[appErr.FileID], appErr)
}

// FileInfo is one file discovered by a directory scan, identified by its
// path.
type FileInfo struct {
	Path string
}

// FileMap associates a file ID with the path it was read from.
type FileMap = map[int]string

// IngestionChannels are the pipes connecting the dispatcher, parser
// workers, and DB workers of one ingestion run.
type IngestionChannels struct {
	Jobs    chan FileJob
	Results chan *ParsedRecord
	Errors  chan AppError
}

// IngestionWaitGroups track the three worker pools so Execute knows
// when each stage has drained.
type IngestionWaitGroups struct {
	ParserWg *sync.WaitGroup
	DbWg     *sync.WaitGroup
	MainWg   *sync.WaitGroup
}
