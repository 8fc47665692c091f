package ingestion

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cdacos/allegro/internal/config"
	"github.com/cdacos/allegro/internal/models"
)

// MockWorker is a mock implementation of the Worker interface.
type MockWorker struct {
	mock.Mock
}

func (m *MockWorker) WithChannels(channels *models.IngestionChannels) Worker {
	m.Called(channels)
	return m
}

func (m *MockWorker) WithWaitGroups(waitGroups *models.IngestionWaitGroups) Worker {
	m.Called(waitGroups)
	return m
}

func (m *MockWorker) SetupErrorWorker() (Runner[func(*models.FileErrorMap)], *sync.WaitGroup, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return Runner[func(*models.FileErrorMap)]{}, nil, args.Error(2)
	}
	return args.Get(0).(Runner[func(*models.FileErrorMap)]), args.Get(1).(*sync.WaitGroup), args.Error(2)
}

func (m *MockWorker) SetupParserWorkers(numWorkers int) (Runner[func()], *sync.WaitGroup, error) {
	args := m.Called(numWorkers)
	if args.Get(0) == nil {
		return Runner[func()]{}, nil, args.Error(2)
	}
	return args.Get(0).(Runner[func()]), args.Get(1).(*sync.WaitGroup), args.Error(2)
}

func (m *MockWorker) SetupDBWorkers(numWorkers int) (Runner[func()], *sync.WaitGroup, error) {
	args := m.Called(numWorkers)
	if args.Get(0) == nil {
		return Runner[func()]{}, nil, args.Error(2)
	}
	return args.Get(0).(Runner[func()]), args.Get(1).(*sync.WaitGroup), args.Error(2)
}

func (m *MockWorker) SetupJobDispatcherWorker(fileInfos []models.FileInfo, fileMap map[int]string, batchID uuid.UUID) (Runner[func()], *sync.WaitGroup, error) {
	args := m.Called(fileInfos, fileMap, batchID)
	if args.Get(0) == nil {
		return Runner[func()]{}, nil, args.Error(2)
	}
	return args.Get(0).(Runner[func()]), args.Get(1).(*sync.WaitGroup), args.Error(2)
}

// MockProcessor is a mock implementation of the Processor interface.
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) ScanForFiles(path string) ([]models.FileInfo, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FileInfo), args.Error(1)
}

func (m *MockProcessor) UpdateFileStatus(fileErrorsMap *models.FileErrorMap, fileMap *models.FileMap) error {
	args := m.Called(fileErrorsMap, fileMap)
	return args.Error(0)
}

// MockSetup is a mock implementation of the ISetup interface.
type MockSetup struct {
	mock.Mock
}

func (m *MockSetup) build() (SetupReturn, error) {
	args := m.Called()
	return args.Get(0).(SetupReturn), args.Error(1)
}

func buildTestSetup() (string, *MockDBManager, *MockWorker, *MockProcessor, *MockSetup, SetupReturn, config.Config) {
	const path = "some/path"
	dbManager := new(MockDBManager)
	worker := new(MockWorker)
	processor := new(MockProcessor)
	setup := new(MockSetup)

	cfg := config.Config{
		NumParserWorkers: 1,
		NumDBWorkers:     3,
	}

	fileMap := make(models.FileMap)
	setupReturn := SetupReturn{
		Channels: &models.IngestionChannels{
			Results: make(chan *models.ParsedRecord, 100),
			Errors:  make(chan models.AppError, 100),
			Jobs:    make(chan models.FileJob, 100),
		},
		WaitGroups:    &models.IngestionWaitGroups{ParserWg: &sync.WaitGroup{}, DbWg: &sync.WaitGroup{}, MainWg: &sync.WaitGroup{}},
		FileMap:       &fileMap,
		FileErrorsMap: &models.FileErrorMap{Errors: make(map[int][]models.AppError)},
	}
	return path, dbManager, worker, processor, setup, setupReturn, cfg
}

func TestIngestionService_Execute(t *testing.T) {
	t.Run("runs successfully", func(t *testing.T) {
		path, dbManager, worker, processor, setup, setupReturn, cfg := buildTestSetup()
		scanResult := []models.FileInfo{{Path: "a.v21"}}

		setup.On("build").Return(setupReturn, nil).Once()
		processor.On("ScanForFiles", path).Return(scanResult, nil).Once()
		worker.On("WithChannels", setupReturn.Channels).Return(worker).Once()
		worker.On("WithWaitGroups", setupReturn.WaitGroups).Return(worker).Once()

		dispatcherRunner := Runner[func()]{Run: func() {}}
		worker.On("SetupJobDispatcherWorker", scanResult, *setupReturn.FileMap, mock.AnythingOfType("uuid.UUID")).Return(dispatcherRunner, &sync.WaitGroup{}, nil).Once()

		errorRunner := Runner[func(*models.FileErrorMap)]{Run: func(*models.FileErrorMap) {}}
		worker.On("SetupErrorWorker").Return(errorRunner, &sync.WaitGroup{}, nil).Once()

		parserRunner := Runner[func()]{Run: func() {}}
		worker.On("SetupParserWorkers", cfg.NumParserWorkers).Return(parserRunner, &sync.WaitGroup{}, nil).Once()

		dbRunner := Runner[func()]{Run: func() {}}
		worker.On("SetupDBWorkers", cfg.NumDBWorkers).Return(dbRunner, &sync.WaitGroup{}, nil).Once()

		processor.On("UpdateFileStatus", setupReturn.FileErrorsMap, setupReturn.FileMap).Return(nil).Once()

		service := NewIngestionService(dbManager, setup, worker, processor, cfg)
		err := service.Execute(path)

		if err != nil {
			t.Errorf("did not expect an error, got: %v", err)
		}

		worker.AssertExpectations(t)
		processor.AssertExpectations(t)
		setup.AssertExpectations(t)
	})

	t.Run("returns an error when setup fails", func(t *testing.T) {
		path, dbManager, worker, processor, setup, _, cfg := buildTestSetup()
		setup.On("build").Return(SetupReturn{}, errors.New("build error")).Once()

		service := NewIngestionService(dbManager, setup, worker, processor, cfg)
		err := service.Execute(path)

		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		setup.AssertExpectations(t)
		processor.AssertNotCalled(t, "ScanForFiles", mock.Anything)
	})

	t.Run("returns an error when scanning fails", func(t *testing.T) {
		path, dbManager, worker, processor, setup, setupReturn, cfg := buildTestSetup()
		setup.On("build").Return(setupReturn, nil).Once()
		processor.On("ScanForFiles", path).Return(nil, errors.New("scan error")).Once()

		service := NewIngestionService(dbManager, setup, worker, processor, cfg)
		err := service.Execute(path)

		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		setup.AssertExpectations(t)
		processor.AssertExpectations(t)
		worker.AssertNotCalled(t, "WithChannels", mock.Anything)
	})

	t.Run("returns an error when the job dispatcher fails to set up", func(t *testing.T) {
		path, dbManager, worker, processor, setup, setupReturn, cfg := buildTestSetup()
		scanResult := []models.FileInfo{{Path: "a.v21"}}

		setup.On("build").Return(setupReturn, nil).Once()
		processor.On("ScanForFiles", path).Return(scanResult, nil).Once()
		worker.On("WithChannels", setupReturn.Channels).Return(worker).Once()
		worker.On("WithWaitGroups", setupReturn.WaitGroups).Return(worker).Once()
		worker.On("SetupJobDispatcherWorker", scanResult, *setupReturn.FileMap, mock.AnythingOfType("uuid.UUID")).Return(nil, nil, errors.New("dispatcher error")).Once()

		service := NewIngestionService(dbManager, setup, worker, processor, cfg)
		err := service.Execute(path)

		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		worker.AssertExpectations(t)
		worker.AssertNotCalled(t, "SetupErrorWorker")
	})
}
