package publish

import (
	"time"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockPublishManager is a mock implementation of PublishManager for testing.
type MockPublishManager struct {
	mock.Mock
}

var _ contract.PublishManager = &MockPublishManager{} // Compile-time check

// GetRunStore implements the PublishManager interface.
func (m *MockPublishManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, sourcePath string, command string) (string, error) {
	args := m.Called(startTime, sourcePath, command)
	return args.String(0), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID string, endTime time.Time, projectCount int) error {
	args := m.Called(runID, endTime, projectCount)
	return args.Error(0)
}

// RecordProjectScores implements the RunStore interface.
func (m *MockRunStore) RecordProjectScores(runID string, rows []schema.ProjectScoreRecord) error {
	args := m.Called(runID, rows)
	return args.Error(0)
}

// RecordStageCounts implements the RunStore interface.
func (m *MockRunStore) RecordStageCounts(runID string, rows []schema.StageStatusCount) error {
	args := m.Called(runID, rows)
	return args.Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.PublishStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.PublishStatus), args.Error(1)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.RunRecord)
	return rows, args.Error(1)
}

// GetAllProjectScores implements the RunStore interface.
func (m *MockRunStore) GetAllProjectScores() ([]schema.ProjectScoreRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.ProjectScoreRecord)
	return rows, args.Error(1)
}

// GetAllStageCounts implements the RunStore interface.
func (m *MockRunStore) GetAllStageCounts() ([]schema.StageCountRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.StageCountRecord)
	return rows, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
