package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cdacos/allegro/internal/database"
	"github.com/cdacos/allegro/internal/models"
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

func TestWorkLookupService_GetWorkRecords(t *testing.T) {
	t.Run("should return work records successfully", func(t *testing.T) {
		dbManager := new(MockDBManager)
		service := NewWorkLookupService(dbManager)

		workNum := "AB1234567890"
		expected := []database.RecordRow{
			{FileID: 1, LineNum: 4, Tag: "NWR", RawLine: "NWR0000000100000004..."},
		}

		dbManager.On("FindBySubmitterWorkNum", workNum).Return(expected, nil).Once()

		req := httptest.NewRequest("GET", "/works/"+workNum, nil)
		rr := httptest.NewRecorder()

		service.GetWorkRecords(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var actual []database.RecordRow
		err := json.NewDecoder(rr.Body).Decode(&actual)
		assert.NoError(t, err)
		assert.Equal(t, expected, actual)

		dbManager.AssertExpectations(t)
	})

	t.Run("should return error when work number is not provided", func(t *testing.T) {
		dbManager := new(MockDBManager)
		service := NewWorkLookupService(dbManager)

		req := httptest.NewRequest("GET", "/works/", nil)
		rr := httptest.NewRecorder()

		service.GetWorkRecords(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should return error when db manager fails", func(t *testing.T) {
		dbManager := new(MockDBManager)
		service := NewWorkLookupService(dbManager)

		workNum := "AB1234567890"
		dbManager.On("FindBySubmitterWorkNum", workNum).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest("GET", "/works/"+workNum, nil)
		rr := httptest.NewRecorder()

		service.GetWorkRecords(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		dbManager.AssertExpectations(t)
	})
}
