package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/ecoquest/ecoquest/ecoquest/database/models"
	quiz "github.com/ecoquest/ecoquest/ecoquest/quiz"
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

// CorrectChoiceID mocks base method.
func (m *MockStore) CorrectChoiceID(ctx context.Context, questionID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CorrectChoiceID", ctx, questionID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CorrectChoiceID indicates an expected call of CorrectChoiceID.
func (mr *MockStoreMockRecorder) CorrectChoiceID(ctx, questionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CorrectChoiceID", reflect.TypeOf((*MockStore)(nil).CorrectChoiceID), ctx, questionID)
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

// GetSession mocks base method.
func (m *MockStore) GetSession(ctx context.Context, userID int64, date string) (*models.QuizSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSession", ctx, userID, date)
	ret0, _ := ret[0].(*models.QuizSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSession indicates an expected call of GetSession.
func (mr *MockStoreMockRecorder) GetSession(ctx, userID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSession", reflect.TypeOf((*MockStore)(nil).GetSession), ctx, userID, date)
}

// InsertAnswer mocks base method.
func (m *MockStore) InsertAnswer(ctx context.Context, answer *models.QuizAnswer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertAnswer", ctx, answer)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertAnswer indicates an expected call of InsertAnswer.
func (mr *MockStoreMockRecorder) InsertAnswer(ctx, answer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertAnswer", reflect.TypeOf((*MockStore)(nil).InsertAnswer), ctx, answer)
}

// InsertSession mocks base method.
func (m *MockStore) InsertSession(ctx context.Context, session *models.QuizSession) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertSession", ctx, session)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertSession indicates an expected call of InsertSession.
func (mr *MockStoreMockRecorder) InsertSession(ctx, session any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertSession", reflect.TypeOf((*MockStore)(nil).InsertSession), ctx, session)
}

// RandomQuestions mocks base method.
func (m *MockStore) RandomQuestions(ctx context.Context, n int) ([]*models.QuizQuestion, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RandomQuestions", ctx, n)
	ret0, _ := ret[0].([]*models.QuizQuestion)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RandomQuestions indicates an expected call of RandomQuestions.
func (mr *MockStoreMockRecorder) RandomQuestions(ctx, n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RandomQuestions", reflect.TypeOf((*MockStore)(nil).RandomQuestions), ctx, n)
}

// RunInTx mocks base method.
func (m *MockStore) RunInTx(ctx context.Context, fn func(context.Context, quiz.Store) error) error {
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

// UpdateSessionScore mocks base method.
func (m *MockStore) UpdateSessionScore(ctx context.Context, sessionID int64, score int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateSessionScore", ctx, sessionID, score)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateSessionScore indicates an expected call of UpdateSessionScore.
func (mr *MockStoreMockRecorder) UpdateSessionScore(ctx, sessionID, score any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSessionScore", reflect.TypeOf((*MockStore)(nil).UpdateSessionScore), ctx, sessionID, score)
}
