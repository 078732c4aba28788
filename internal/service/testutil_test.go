package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	ownerID    uint = 1
	strangerID uint = 2
)

// ticketStub records ticket hand-offs without touching the network.
type ticketStub struct {
	calls []dto.CreateTicketRequest
	id    int64
	err   error
}

func (s *ticketStub) CreateTicket(req dto.CreateTicketRequest) (int64, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return 0, s.err
	}
	return s.id, nil
}

type testEnv struct {
	db          *gorm.DB
	forms       FormService
	questions   QuestionService
	options     OptionService
	submissions SubmissionService
	responses   ResponseService
	ticket      *ticketStub
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Form{},
		&model.Question{},
		&model.Option{},
		&model.Response{},
		&model.Answer{},
	))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	formRepo := repository.NewFormRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	ticket := &ticketStub{id: 42}
	return &testEnv{
		db:          db,
		forms:       NewFormService(formRepo, answerRepo, db),
		questions:   NewQuestionService(formRepo, questionRepo, db),
		options:     NewOptionService(formRepo, questionRepo, optionRepo),
		submissions: NewSubmissionService(formRepo, questionRepo, ticket, db),
		responses:   NewResponseService(formRepo, questionRepo, answerRepo),
		ticket:      ticket,
	}
}

// createForm builds a published form through the services so every fixture
// takes the real code path.
func (e *testEnv) createForm(t *testing.T, title string) *dto.FormResponse {
	t.Helper()
	form, err := e.forms.Create(ownerID, title)
	require.NoError(t, err)
	return form
}

func (e *testEnv) publish(t *testing.T, formID uint) {
	t.Helper()
	_, err := e.forms.TogglePublish(ownerID, formID)
	require.NoError(t, err)
}

func (e *testEnv) addQuestion(t *testing.T, formID uint, req dto.CreateQuestionRequest) *dto.QuestionResponse {
	t.Helper()
	question, err := e.questions.Create(ownerID, formID, req)
	require.NoError(t, err)
	return question
}

func (e *testEnv) countRows(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(m).Count(&n).Error)
	return n
}

func uintPtr(v uint) *uint { return &v }
