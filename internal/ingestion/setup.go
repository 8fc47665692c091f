package ingestion

import (
	"sync"

	"github.com/cdacos/allegro/internal/models"
)

// ISetup builds the channels and wait groups one ingestion run shares
// across its worker pools, kept behind an interface so tests can
// substitute a fake and avoid wiring real channels.
type ISetup interface {
	build() (SetupReturn, error)
}

// SetupReturn bundles everything build() allocates for one run.
type SetupReturn struct {
	Channels      *models.IngestionChannels
	WaitGroups    *models.IngestionWaitGroups
	FileMap       *models.FileMap
	FileErrorsMap *models.FileErrorMap
}

// GetValues unpacks SetupReturn for callers that want its fields inline.
func (s SetupReturn) GetValues() (*models.IngestionChannels, *models.IngestionWaitGroups, *models.FileMap, *models.FileErrorMap) {
	return s.Channels, s.WaitGroups, s.FileMap, s.FileErrorsMap
}

// Setup is the production ISetup.
type Setup struct {
	JobsChannelSize    int
	ResultsChannelSize int
	ErrorsChannelSize  int
}

// build instantiates the channels, wait groups, and bookkeeping maps one
// ingestion run needs. Kept as its own struct (rather than inline in
// Execute) so tests can substitute a fake and exercise the orchestration
// logic without real channels.
func (s Setup) build() (SetupReturn, error) {
	jobsSize := s.JobsChannelSize
	if jobsSize == 0 {
		jobsSize = 100
	}
	resultsSize := s.ResultsChannelSize
	if resultsSize == 0 {
		resultsSize = 100
	}
	errorsSize := s.ErrorsChannelSize
	if errorsSize == 0 {
		errorsSize = 100
	}

	channels := models.IngestionChannels{
		Jobs:    make(chan models.FileJob, jobsSize),
		Results: make(chan *models.ParsedRecord, resultsSize),
		Errors:  make(chan models.AppError, errorsSize),
	}

	fileMap := make(models.FileMap)
	fileErrorsMap := models.FileErrorMap{Errors: make(map[int][]models.AppError)}

	return SetupReturn{
		Channels:      &channels,
		WaitGroups:    &models.IngestionWaitGroups{ParserWg: &sync.WaitGroup{}, DbWg: &sync.WaitGroup{}, MainWg: &sync.WaitGroup{}},
		FileMap:       &fileMap,
		FileErrorsMap: &fileErrorsMap,
	}, nil
}
