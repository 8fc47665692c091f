package ingestion

import (
	"log"

	"github.com/google/uuid"

	"github.com/cdacos/allegro/internal/config"
	"github.com/cdacos/allegro/internal/database"
)

// IngestionService orchestrates one directory-wide ingestion run: scan,
// dispatch, parse, persist. Grounded on internal/ingestion/service.go's
// Execute, simplified by dropping the partition/staging-table setup a
// CWR transmission has no use for (it carries no reference-date axis).
type IngestionService struct {
	dbManager     database.DBManager
	setupService  ISetup
	asyncWorker   Worker
	fileProcessor Processor
	config        config.Config
}

// NewIngestionService wires the four collaborators Execute drives.
func NewIngestionService(dbManager database.DBManager, setupService ISetup, worker Worker, processor Processor, cfg config.Config) *IngestionService {
	return &IngestionService{
		dbManager:     dbManager,
		setupService:  setupService,
		asyncWorker:   worker,
		fileProcessor: processor,
		config:        cfg,
	}
}

// Execute scans filesPath for CWR files and ingests every one not
// already recorded under a matching checksum.
func (h *IngestionService) Execute(filesPath string) error {
	environmentConfig, err := h.setupService.build()
	if err != nil {
		return err
	}

	channels, waitGroups, fileMap, fileErrorsMap := environmentConfig.GetValues()

	log.Println("Scanning for files...")
	fileInfos, err := h.fileProcessor.ScanForFiles(filesPath)
	if err != nil {
		log.Printf("Failed to scan files: %v", err)
		return err
	}

	h.asyncWorker.WithChannels(channels).WithWaitGroups(waitGroups)

	batchID := uuid.New()

	dispatcherWorkerRunner, _, err := h.asyncWorker.SetupJobDispatcherWorker(fileInfos, *fileMap, batchID)
	if err != nil {
		return err
	}
	dispatcherWorkerRunner.Run()

	errorWorkerRunner, mainWaitGroup, err := h.asyncWorker.SetupErrorWorker()
	if err != nil {
		return err
	}
	errorWorkerRunner.Run(fileErrorsMap)

	parserWorkersRunner, parserWorkerWaitGroup, err := h.asyncWorker.SetupParserWorkers(h.config.NumParserWorkers)
	if err != nil {
		return err
	}
	parserWorkersRunner.Run()

	dbWorkersRunner, dbWorkerWaitGroup, err := h.asyncWorker.SetupDBWorkers(h.config.NumDBWorkers)
	if err != nil {
		return err
	}
	dbWorkersRunner.Run()

	log.Println("Waiting for parser workers to finish...")
	parserWorkerWaitGroup.Wait()

	close(channels.Results)

	log.Println("Waiting for DB workers to finish...")
	dbWorkerWaitGroup.Wait()

	close(channels.Errors)

	log.Println("Waiting for error worker to finish...")
	mainWaitGroup.Wait()

	if err := h.fileProcessor.UpdateFileStatus(fileErrorsMap, fileMap); err != nil {
		log.Printf("Failed to update file statuses: %v", err)
		return err
	}

	log.Println("Ingestion run finished.")
	return nil
}
