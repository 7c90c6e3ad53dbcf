package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/ecoquest/ecoquest/ecoquest/database/models"
	quest "github.com/ecoquest/ecoquest/ecoquest/quest"
	gomock "go.uber.org/mock/gomock"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
	isgomock struct{}
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// CountCompleted mocks base method.
func (m *MockStore) CountCompleted(ctx context.Context, userID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCompleted", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCompleted indicates an expected call of CountCompleted.
func (mr *MockStoreMockRecorder) CountCompleted(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCompleted", reflect.TypeOf((*MockStore)(nil).CountCompleted), ctx, userID)
}

// CreditPoints mocks base method.
func (m *MockStore) CreditPoints(ctx context.Context, userID, amount int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreditPoints", ctx, userID, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreditPoints indicates an expected call of CreditPoints.
func (mr *MockStoreMockRecorder) CreditPoints(ctx, userID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreditPoints", reflect.TypeOf((*MockStore)(nil).CreditPoints), ctx, userID, amount)
}

// GetAttempt mocks base method.
func (m *MockStore) GetAttempt(ctx context.Context, id int64) (*models.UserQuest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAttempt", ctx, id)
	ret0, _ := ret[0].(*models.UserQuest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAttempt indicates an expected call of GetAttempt.
func (mr *MockStoreMockRecorder) GetAttempt(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAttempt", reflect.TypeOf((*MockStore)(nil).GetAttempt), ctx, id)
}

// GetAttemptForUpdate mocks base method.
func (m *MockStore) GetAttemptForUpdate(ctx context.Context, id int64) (*models.UserQuest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAttemptForUpdate", ctx, id)
	ret0, _ := ret[0].(*models.UserQuest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAttemptForUpdate indicates an expected call of GetAttemptForUpdate.
func (mr *MockStoreMockRecorder) GetAttemptForUpdate(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAttemptForUpdate", reflect.TypeOf((*MockStore)(nil).GetAttemptForUpdate), ctx, id)
}

// GetCounters mocks base method.
func (m *MockStore) GetCounters(ctx context.Context, userID int64) (map[string]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCounters", ctx, userID)
	ret0, _ := ret[0].(map[string]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCounters indicates an expected call of GetCounters.
func (mr *MockStoreMockRecorder) GetCounters(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCounters", reflect.TypeOf((*MockStore)(nil).GetCounters), ctx, userID)
}

// GetQuest mocks base method.
func (m *MockStore) GetQuest(ctx context.Context, questID int64) (*models.Quest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetQuest", ctx, questID)
	ret0, _ := ret[0].(*models.Quest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetQuest indicates an expected call of GetQuest.
func (mr *MockStoreMockRecorder) GetQuest(ctx, questID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetQuest", reflect.TypeOf((*MockStore)(nil).GetQuest), ctx, questID)
}

// GetStreak mocks base method.
func (m *MockStore) GetStreak(ctx context.Context, userID int64) (*models.UserStreak, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStreak", ctx, userID)
	ret0, _ := ret[0].(*models.UserStreak)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStreak indicates an expected call of GetStreak.
func (mr *MockStoreMockRecorder) GetStreak(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStreak", reflect.TypeOf((*MockStore)(nil).GetStreak), ctx, userID)
}

// GetUserPoints mocks base method.
func (m *MockStore) GetUserPoints(ctx context.Context, userID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserPoints", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserPoints indicates an expected call of GetUserPoints.
func (mr *MockStoreMockRecorder) GetUserPoints(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserPoints", reflect.TypeOf((*MockStore)(nil).GetUserPoints), ctx, userID)
}

// GrantBadge mocks base method.
func (m *MockStore) GrantBadge(ctx context.Context, userID, badgeID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GrantBadge", ctx, userID, badgeID)
	ret0, _ := ret[0].(error)
	return ret0
}

// GrantBadge indicates an expected call of GrantBadge.
func (mr *MockStoreMockRecorder) GrantBadge(ctx, userID, badgeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GrantBadge", reflect.TypeOf((*MockStore)(nil).GrantBadge), ctx, userID, badgeID)
}

// HasBadge mocks base method.
func (m *MockStore) HasBadge(ctx context.Context, userID, badgeID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasBadge", ctx, userID, badgeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasBadge indicates an expected call of HasBadge.
func (mr *MockStoreMockRecorder) HasBadge(ctx, userID, badgeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasBadge", reflect.TypeOf((*MockStore)(nil).HasBadge), ctx, userID, badgeID)
}

// HasCompletionInPeriode mocks base method.
func (m *MockStore) HasCompletionInPeriode(ctx context.Context, userID int64, periode string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasCompletionInPeriode", ctx, userID, periode)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasCompletionInPeriode indicates an expected call of HasCompletionInPeriode.
func (mr *MockStoreMockRecorder) HasCompletionInPeriode(ctx, userID, periode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasCompletionInPeriode", reflect.TypeOf((*MockStore)(nil).HasCompletionInPeriode), ctx, userID, periode)
}

// InsertAttempt mocks base method.
func (m *MockStore) InsertAttempt(ctx context.Context, attempt *models.UserQuest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertAttempt", ctx, attempt)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertAttempt indicates an expected call of InsertAttempt.
func (mr *MockStoreMockRecorder) InsertAttempt(ctx, attempt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertAttempt", reflect.TypeOf((*MockStore)(nil).InsertAttempt), ctx, attempt)
}

// ListAttempts mocks base method.
func (m *MockStore) ListAttempts(ctx context.Context, userID int64, periode string) ([]*models.UserQuest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAttempts", ctx, userID, periode)
	ret0, _ := ret[0].([]*models.UserQuest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAttempts indicates an expected call of ListAttempts.
func (mr *MockStoreMockRecorder) ListAttempts(ctx, userID, periode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAttempts", reflect.TypeOf((*MockStore)(nil).ListAttempts), ctx, userID, periode)
}

// ListBadges mocks base method.
func (m *MockStore) ListBadges(ctx context.Context) ([]*models.Badge, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBadges", ctx)
	ret0, _ := ret[0].([]*models.Badge)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBadges indicates an expected call of ListBadges.
func (mr *MockStoreMockRecorder) ListBadges(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBadges", reflect.TypeOf((*MockStore)(nil).ListBadges), ctx)
}

// RunInTx mocks base method.
func (m *MockStore) RunInTx(ctx context.Context, fn func(context.Context, quest.Store) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunInTx", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// RunInTx indicates an expected call of RunInTx.
func (mr *MockStoreMockRecorder) RunInTx(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunInTx", reflect.TypeOf((*MockStore)(nil).RunInTx), ctx, fn)
}

// UpdateAttempt mocks base method.
func (m *MockStore) UpdateAttempt(ctx context.Context, attempt *models.UserQuest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAttempt", ctx, attempt)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateAttempt indicates an expected call of UpdateAttempt.
func (mr *MockStoreMockRecorder) UpdateAttempt(ctx, attempt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAttempt", reflect.TypeOf((*MockStore)(nil).UpdateAttempt), ctx, attempt)
}

// UpsertStreak mocks base method.
func (m *MockStore) UpsertStreak(ctx context.Context, streak *models.UserStreak) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertStreak", ctx, streak)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertStreak indicates an expected call of UpsertStreak.
func (mr *MockStoreMockRecorder) UpsertStreak(ctx, streak any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertStreak", reflect.TypeOf((*MockStore)(nil).UpsertStreak), ctx, streak)
}
