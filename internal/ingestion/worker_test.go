package ingestion

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cdacos/allegro/internal/database"
	"github.com/cdacos/allegro/internal/models"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

type MockDBManager struct {
	mock.Mock
}

func (m *MockDBManager) IsFileAlreadyProcessed(checksum string) (bool, error) {
	args := m.Called(checksum)
	return args.Bool(0), args.Error(1)
}

func (m *MockDBManager) InsertFileRecord(fileName, checksum string, batchID uuid.UUID) (int, error) {
	args := m.Called(fileName, checksum, batchID)
	return args.Int(0), args.Error(1)
}

func (m *MockDBManager) UpdateFileStatus(fileID int, status string, errs any) error {
	args := m.Called(fileID, status, errs)
	return args.Error(0)
}

func (m *MockDBManager) InsertRecordsBatch(records []*models.ParsedRecord) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockDBManager) FindBySubmitterWorkNum(workNum string) ([]database.RecordRow, error) {
	args := m.Called(workNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.RecordRow), args.Error(1)
}

func TestNewAsyncWorker(t *testing.T) {
	dbManager := new(MockDBManager)
	cfg := AsyncWorkerConfig{NumDBWorkers: 2, DBBatchSize: 100}

	worker := NewAsyncWorker(dbManager, cfg)

	assert.NotNil(t, worker)
	assert.Equal(t, dbManager, worker.dbManager)
	assert.Equal(t, cfg, worker.config)
}

func TestAsyncWorker_WithChannels(t *testing.T) {
	dbManager := new(MockDBManager)
	worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{})

	channels := &models.IngestionChannels{}
	worker.WithChannels(channels)

	assert.Equal(t, channels, worker.channels)
}

func TestAsyncWorker_WithWaitGroups(t *testing.T) {
	dbManager := new(MockDBManager)
	worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{})

	waitGroups := &models.IngestionWaitGroups{}
	worker.WithWaitGroups(waitGroups)

	assert.Equal(t, waitGroups, worker.waitGroups)
}

func TestAsyncWorker_ErrorWorker(t *testing.T) {
	t.Run("aggregates errors", func(t *testing.T) {
		dbManager := new(MockDBManager)
		worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{})

		errorsChan := make(chan models.AppError, 2)
		waitGroups := &models.IngestionWaitGroups{MainWg: &sync.WaitGroup{}}
		fileErrorsMap := &models.FileErrorMap{Errors: make(map[int][]models.AppError)}

		worker.WithChannels(&models.IngestionChannels{Errors: errorsChan}).WithWaitGroups(waitGroups)

		waitGroups.MainWg.Add(1)
		go worker.ErrorWorker(fileErrorsMap)

		errorsChan <- models.AppError{FileID: 1, Message: "error 1"}
		errorsChan <- models.AppError{FileID: 1, Message: "error 2"}
		close(errorsChan)

		waitGroups.MainWg.Wait()

		assert.Len(t, fileErrorsMap.Errors[1], 2)
	})

	t.Run("stops aggregating past MaxErrorsPerFile", func(t *testing.T) {
		dbManager := new(MockDBManager)
		worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{})

		errorsChan := make(chan models.AppError, models.MaxErrorsPerFile+1)
		waitGroups := &models.IngestionWaitGroups{MainWg: &sync.WaitGroup{}}
		fileErrorsMap := &models.FileErrorMap{Errors: make(map[int][]models.AppError)}

		worker.WithChannels(&models.IngestionChannels{Errors: errorsChan}).WithWaitGroups(waitGroups)

		waitGroups.MainWg.Add(1)
		go worker.ErrorWorker(fileErrorsMap)

		for i := 0; i < models.MaxErrorsPerFile+1; i++ {
			errorsChan <- models.AppError{FileID: 2, Message: "an error"}
		}
		close(errorsChan)

		waitGroups.MainWg.Wait()

		assert.Len(t, fileErrorsMap.Errors[2], models.MaxErrorsPerFile)
	})
}

func TestAsyncWorker_DbWorker(t *testing.T) {
	const batchSize = 2

	t.Run("full batch and final batch", func(t *testing.T) {
		dbManager := new(MockDBManager)
		worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{DBBatchSize: batchSize})

		var callSizes []int
		dbManager.On("InsertRecordsBatch", mock.Anything).Run(func(args mock.Arguments) {
			callSizes = append(callSizes, len(args.Get(0).([]*models.ParsedRecord)))
		}).Return(nil)

		resultsChan := make(chan *models.ParsedRecord, 3)
		errorsChan := make(chan models.AppError, 1)
		waitGroups := &models.IngestionWaitGroups{DbWg: &sync.WaitGroup{}}

		waitGroups.DbWg.Add(1)
		go worker.DbWorker(1, resultsChan, errorsChan, waitGroups)

		resultsChan <- &models.ParsedRecord{FileID: 1}
		resultsChan <- &models.ParsedRecord{FileID: 2}
		resultsChan <- &models.ParsedRecord{FileID: 3}
		close(resultsChan)

		waitGroups.DbWg.Wait()

		assert.Equal(t, []int{2, 1}, callSizes)
		assert.Len(t, errorsChan, 0)
	})

	t.Run("db handler fails", func(t *testing.T) {
		dbManager := new(MockDBManager)
		worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{DBBatchSize: batchSize})

		dbManager.On("InsertRecordsBatch", mock.Anything).Return(assert.AnError)

		resultsChan := make(chan *models.ParsedRecord, 2)
		errorsChan := make(chan models.AppError, 2)
		waitGroups := &models.IngestionWaitGroups{DbWg: &sync.WaitGroup{}}

		waitGroups.DbWg.Add(1)
		go worker.DbWorker(1, resultsChan, errorsChan, waitGroups)

		resultsChan <- &models.ParsedRecord{FileID: 10}
		resultsChan <- &models.ParsedRecord{FileID: 11}
		close(resultsChan)

		waitGroups.DbWg.Wait()

		assert.Len(t, errorsChan, 2)
		errorsReceived := make(map[int]bool)
		for i := 0; i < 2; i++ {
			errorsReceived[(<-errorsChan).FileID] = true
		}
		assert.True(t, errorsReceived[10])
		assert.True(t, errorsReceived[11])
	})

	t.Run("no records", func(t *testing.T) {
		dbManager := new(MockDBManager)
		worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{DBBatchSize: batchSize})

		resultsChan := make(chan *models.ParsedRecord)
		errorsChan := make(chan models.AppError, 1)
		waitGroups := &models.IngestionWaitGroups{DbWg: &sync.WaitGroup{}}

		waitGroups.DbWg.Add(1)
		go worker.DbWorker(1, resultsChan, errorsChan, waitGroups)

		close(resultsChan)

		waitGroups.DbWg.Wait()

		dbManager.AssertNotCalled(t, "InsertRecordsBatch", mock.Anything)
	})
}

func TestAsyncWorker_ParserWorker(t *testing.T) {
	t.Run("dispatches every line to Results", func(t *testing.T) {
		tmpfile, err := os.CreateTemp("", "parser_test_*.cwr")
		assert.NoError(t, err)
		defer os.Remove(tmpfile.Name())

		hdr := "HDRPB226144452ACME MUSIC                                          01.102202401011200020240101\r\n"
		_, err = tmpfile.WriteString(hdr)
		assert.NoError(t, err)
		tmpfile.Close()

		dbManager := new(MockDBManager)
		worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{DefaultVersion: version.V21})

		channels := &models.IngestionChannels{
			Jobs:    make(chan models.FileJob, 1),
			Results: make(chan *models.ParsedRecord, 1),
			Errors:  make(chan models.AppError, 1),
		}
		waitGroups := &models.IngestionWaitGroups{ParserWg: &sync.WaitGroup{}}

		worker.WithChannels(channels).WithWaitGroups(waitGroups)

		waitGroups.ParserWg.Add(1)
		go worker.ParserWorker()

		batchID := uuid.New()
		channels.Jobs <- models.FileJob{FilePath: tmpfile.Name(), FileID: 1, BatchID: batchID}
		close(channels.Jobs)

		select {
		case rec := <-channels.Results:
			assert.Equal(t, "HDR", rec.Tag)
			assert.Equal(t, 1, rec.FileID)
			assert.Equal(t, batchID, rec.BatchID)
		case appErr := <-channels.Errors:
			t.Fatalf("expected no error, got: %v", appErr)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for result")
		}

		waitGroups.ParserWg.Wait()
	})

	t.Run("file not found reports an AppError", func(t *testing.T) {
		dbManager := new(MockDBManager)
		worker := NewAsyncWorker(dbManager, AsyncWorkerConfig{})

		channels := &models.IngestionChannels{
			Jobs:    make(chan models.FileJob, 1),
			Results: make(chan *models.ParsedRecord, 1),
			Errors:  make(chan models.AppError, 1),
		}
		waitGroups := &models.IngestionWaitGroups{ParserWg: &sync.WaitGroup{}}

		worker.WithChannels(channels).WithWaitGroups(waitGroups)

		waitGroups.ParserWg.Add(1)
		go worker.ParserWorker()

		channels.Jobs <- models.FileJob{FilePath: "/non/existent/file.cwr", FileID: 2}
		close(channels.Jobs)

		select {
		case appErr := <-channels.Errors:
			assert.Equal(t, 2, appErr.FileID)
			assert.Contains(t, appErr.Message, "failed to open or read file")
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for error")
		}

		waitGroups.ParserWg.Wait()
	})
}
