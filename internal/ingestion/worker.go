// Package ingestion drives the concurrent file pipeline: a dispatcher
// goroutine turns discovered paths into jobs, a pool of parser workers
// turns each job into a stream of dispatched CWR lines, and a pool of DB
// workers batches those lines into the database. Grounded on
// internal/ingestion/worker.go's generic Runner[T] + AsyncWorker shape,
// adapted from per-reference-date trade channels to a single results
// channel (a CWR transmission has no partitioning axis).
package ingestion

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/cdacos/allegro/internal/checksum"
	"github.com/cdacos/allegro/internal/database"
	"github.com/cdacos/allegro/internal/models"
	"github.com/cdacos/allegro/pkg/cwr/dispatch"
	"github.com/cdacos/allegro/pkg/cwr/lineio"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Runner wraps the closure SetupXWorker builds, deferring the actual
// goroutine launch until the caller decides to start it.
type Runner[T any] struct {
	Run T
}

// AsyncWorkerConfig tunes the worker pools built by AsyncWorker.
type AsyncWorkerConfig struct {
	NumDBWorkers   int
	DBBatchSize    int
	DefaultVersion version.Version
}

// Worker sets up the three goroutine pools one ingestion run needs.
type Worker interface {
	WithChannels(channels *models.IngestionChannels) Worker
	WithWaitGroups(waitGroups *models.IngestionWaitGroups) Worker
	SetupErrorWorker() (Runner[func(*models.FileErrorMap)], *sync.WaitGroup, error)
	SetupParserWorkers(numberOfWorkers int) (Runner[func()], *sync.WaitGroup, error)
	SetupDBWorkers(numberOfWorkers int) (Runner[func()], *sync.WaitGroup, error)
	SetupJobDispatcherWorker(fileInfos []models.FileInfo, fileMap map[int]string, batchID uuid.UUID) (Runner[func()], *sync.WaitGroup, error)
}

// AsyncWorker is the production Worker.
type AsyncWorker struct {
	config     AsyncWorkerConfig
	dbManager  database.DBManager
	channels   *models.IngestionChannels
	waitGroups *models.IngestionWaitGroups
}

// NewAsyncWorker builds an AsyncWorker against dbManager, configured by cfg.
func NewAsyncWorker(dbManager database.DBManager, cfg AsyncWorkerConfig) *AsyncWorker {
	return &AsyncWorker{
		dbManager: dbManager,
		config:    cfg,
	}
}

func (w *AsyncWorker) WithChannels(channels *models.IngestionChannels) Worker {
	w.channels = channels
	return w
}

func (w *AsyncWorker) WithWaitGroups(waitGroups *models.IngestionWaitGroups) Worker {
	w.waitGroups = waitGroups
	return w
}

// ParserWorker drains the Jobs channel, dispatching every line of each
// job's file into the Results channel until Jobs is closed.
func (w *AsyncWorker) ParserWorker() {
	defer w.waitGroups.ParserWg.Done()
	for job := range w.channels.Jobs {
		log.Printf("Parser worker started job for file %s (ID: %d)\n", job.FilePath, job.FileID)
		if err := w.parseFile(job); err != nil {
			w.channels.Errors <- models.AppError{FileID: job.FileID, Message: "failed to open or read file", Err: err}
		}
		log.Printf("Parser worker finished job for file %s (ID: %d)\n", job.FilePath, job.FileID)
	}
}

func (w *AsyncWorker) parseFile(job models.FileJob) error {
	file, err := os.Open(job.FilePath)
	if err != nil {
		return err
	}
	defer file.Close()

	resolver := version.NewResolver()
	resolver.Override(w.config.DefaultVersion)
	dispatcher := dispatch.New(resolver)

	reader := lineio.NewReader(file)
	for {
		lineNum, line, lineWarnings, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		entry := dispatcher.Dispatch(lineNum, line)
		txSeq, recSeq := fixedSlice(line, 3, 8), fixedSlice(line, 11, 8)
		switch entry.Record.Tag() {
		case "HDR", "GRH", "GRT", "TRL":
			// Framing records have no transaction/record sequence prefix.
			txSeq, recSeq = "", ""
		}
		w.channels.Results <- &models.ParsedRecord{
			FileID:                 job.FileID,
			BatchID:                job.BatchID,
			LineNum:                entry.LineNum,
			Tag:                    entry.Record.Tag(),
			TransactionSequenceNum: txSeq,
			RecordSequenceNum:      recSeq,
			RawLine:                line,
			Warnings:               append(lineWarnings, entry.Warnings...),
		}
	}
}

// fixedSlice returns line[start:start+length], or "" when line is too
// short to carry that field.
func fixedSlice(line string, start, length int) string {
	if len(line) < start+length {
		return ""
	}
	return line[start : start+length]
}

func (w *AsyncWorker) SetupParserWorkers(numberOfWorkers int) (Runner[func()], *sync.WaitGroup, error) {
	return Runner[func()]{
		Run: func() {
			for i := 1; i <= numberOfWorkers; i++ {
				w.waitGroups.ParserWg.Add(1)
				go w.ParserWorker()
			}
		},
	}, w.waitGroups.ParserWg, nil
}

// DbWorker batches parsed records off resultsChan and writes each full
// batch (and any remainder once the channel closes) via dbManager.
func (w *AsyncWorker) DbWorker(workerID int, resultsChan <-chan *models.ParsedRecord, errorsChan chan<- models.AppError, waitGroups *models.IngestionWaitGroups) {
	log.Printf("DB worker %d: starting\n", workerID)
	defer waitGroups.DbWg.Done()
	batch := make([]*models.ParsedRecord, 0, w.config.DBBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := w.dbManager.InsertRecordsBatch(batch); err != nil {
			fileIDs := make(map[int]bool)
			for _, rec := range batch {
				fileIDs[rec.FileID] = true
			}
			for fileID := range fileIDs {
				errorsChan <- models.AppError{FileID: fileID, Message: "failed to insert batch of records", Err: err}
			}
		}
		batch = batch[:0]
	}

	for result := range resultsChan {
		batch = append(batch, result)
		if len(batch) >= w.config.DBBatchSize {
			flush()
		}
	}
	flush()

	log.Printf("DB worker %d finished.", workerID)
}

func (w *AsyncWorker) SetupDBWorkers(numberOfWorkers int) (Runner[func()], *sync.WaitGroup, error) {
	return Runner[func()]{
		Run: func() {
			for i := 1; i <= numberOfWorkers; i++ {
				w.waitGroups.DbWg.Add(1)
				go w.DbWorker(i, w.channels.Results, w.channels.Errors, w.waitGroups)
			}
		},
	}, w.waitGroups.DbWg, nil
}

// ErrorWorker drains the Errors channel into fileErrorsMap until the
// channel closes, capping per-file accumulation via FileErrorMap.Add.
func (w *AsyncWorker) ErrorWorker(fileErrorsMap *models.FileErrorMap) {
	defer w.waitGroups.MainWg.Done()
	for appErr := range w.channels.Errors {
		log.Printf("Caught error: %s\n", appErr.Error())
		fileErrorsMap.Add(appErr)
	}
}

// PreprocessAndDispatchJobs checksums and registers each discovered file,
// skipping any already processed, and dispatches a job per new file.
func (w *AsyncWorker) PreprocessAndDispatchJobs(fileInfos []models.FileInfo, fileMap map[int]string, batchID uuid.UUID) {
	defer close(w.channels.Jobs)
	defer w.waitGroups.MainWg.Done()

	for _, fileInfo := range fileInfos {
		sum, err := checksum.FileXXHash(fileInfo.Path)
		if err != nil {
			log.Printf("ERROR: failed to checksum %s: %v. Skipping file.", fileInfo.Path, err)
			continue
		}

		isProcessed, err := w.dbManager.IsFileAlreadyProcessed(sum)
		if err != nil {
			log.Printf("ERROR: failed to check processed status for %s: %v. Skipping file.", fileInfo.Path, err)
			continue
		}
		if isProcessed {
			log.Printf("INFO: file %s (checksum %s) already processed. Skipping.", fileInfo.Path, sum)
			continue
		}

		fileID, err := w.dbManager.InsertFileRecord(fileInfo.Path, sum, batchID)
		if err != nil {
			log.Printf("ERROR: failed to insert file record for %s: %v. Skipping file.", fileInfo.Path, err)
			continue
		}

		fileMap[fileID] = fileInfo.Path

		log.Printf("Dispatching job for file: %s (FileID: %d)", fileInfo.Path, fileID)
		w.channels.Jobs <- models.FileJob{FilePath: fileInfo.Path, FileID: fileID, BatchID: batchID}
	}
}

func (w *AsyncWorker) SetupJobDispatcherWorker(fileInfos []models.FileInfo, fileMap map[int]string, batchID uuid.UUID) (Runner[func()], *sync.WaitGroup, error) {
	return Runner[func()]{
		Run: func() {
			w.waitGroups.MainWg.Add(1)
			go w.PreprocessAndDispatchJobs(fileInfos, fileMap, batchID)
		},
	}, w.waitGroups.MainWg, nil
}

func (w *AsyncWorker) SetupErrorWorker() (Runner[func(*models.FileErrorMap)], *sync.WaitGroup, error) {
	return Runner[func(*models.FileErrorMap)]{
		Run: func(fileErrorsMap *models.FileErrorMap) {
			w.waitGroups.MainWg.Add(1)
			go w.ErrorWorker(fileErrorsMap)
		},
	}, w.waitGroups.MainWg, nil
}
