package ingestion

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cdacos/allegro/internal/database"
	"github.com/cdacos/allegro/internal/models"
)

// Processor discovers files to ingest and finalizes their status once
// the run completes.
type Processor interface {
	ScanForFiles(rootPath string) ([]models.FileInfo, error)
	UpdateFileStatus(fileErrorsMap *models.FileErrorMap, fileMap *models.FileMap) error
}

// FileProcessor is the production Processor.
type FileProcessor struct {
	dbManager database.DBManager
}

// NewFileProcessor builds a FileProcessor against dbManager.
func NewFileProcessor(dbManager database.DBManager) *FileProcessor {
	return &FileProcessor{dbManager: dbManager}
}

// ScanForFiles walks rootPath and returns every regular file found,
// in the order the filesystem yields them. Unlike the trade-ingestion
// source this scan is not paired with a content peek: a CWR file's
// version and group structure are only known once it's actually parsed.
func (fp *FileProcessor) ScanForFiles(rootPath string) ([]models.FileInfo, error) {
	var fileInfos []models.FileInfo
	log.Printf("Scanning for files in: %s", rootPath)

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			fileInfos = append(fileInfos, models.FileInfo{Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", rootPath, err)
	}

	log.Printf("Found %d files to process.", len(fileInfos))
	return fileInfos, nil
}

// UpdateFileStatus finalizes every scanned file's database status
// depending on whether it accumulated any errors while parsing.
func (fp *FileProcessor) UpdateFileStatus(fileErrorsMap *models.FileErrorMap, fileMap *models.FileMap) error {
	for fileID := range *fileMap {
		appErrors := fileErrorsMap.Errors[fileID]
		status := database.FileStatusDone
		if len(appErrors) > 0 {
			status = database.FileStatusDoneWithErrors
		}

		if err := fp.dbManager.UpdateFileStatus(fileID, status, appErrors); err != nil {
			log.Printf("Failed to update status for fileID %d: %v\n", fileID, err)
		}
	}
	return nil
}
