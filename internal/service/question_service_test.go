package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
)

func TestQuestionOrderAppends(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")

	for i, text := range []string{"Name", "Email", "Feedback"} {
		q := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: text, Type: string(model.ShortResponse)})
		assert.Equal(t, i+1, q.Order)
	}

	questions, err := env.questions.GetAll(ownerID, form.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "Name", questions[0].Text)
	assert.Equal(t, "Feedback", questions[2].Text)
}

func TestQuestionCreateRejectsOptionsOnShortResponse(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")

	_, err := env.questions.Create(ownerID, form.ID, dto.CreateQuestionRequest{
		Text:    "Name",
		Type:    string(model.ShortResponse),
		Options: []string{"A"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuestionCreateWithOptions(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")

	q := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text:    "Toppings",
		Type:    string(model.SelectMultipleOptions),
		Options: []string{"Cheese", "Mushroom", "Olives"},
	})
	require.Len(t, q.Options, 3)
	for i, o := range q.Options {
		assert.Equal(t, i+1, o.Order)
		assert.Equal(t, q.ID, o.QuestionID)
	}
}

func TestQuestionPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	q := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text:        "Name",
		Placeholder: "Your name",
		Type:        string(model.ShortResponse),
	})

	text := "Full Name"
	mandatory := true
	updated, err := env.questions.Update(ownerID, form.ID, q.ID, dto.UpdateQuestionRequest{
		Text:      &text,
		Mandatory: &mandatory,
	})
	require.NoError(t, err)
	assert.Equal(t, "Full Name", updated.Text)
	assert.True(t, updated.Mandatory)
	assert.Equal(t, "Your name", updated.Placeholder, "omitted fields keep their value")
	assert.Equal(t, string(model.ShortResponse), updated.Type, "type is fixed at creation")
}

func TestQuestionUpdateOfForeignQuestion(t *testing.T) {
	env := newTestEnv(t)
	formA := env.createForm(t, "A")
	formB := env.createForm(t, "B")
	q := env.addQuestion(t, formA.ID, dto.CreateQuestionRequest{Text: "Name", Type: string(model.ShortResponse)})

	text := "sneaky"
	_, err := env.questions.Update(ownerID, formB.ID, q.ID, dto.UpdateQuestionRequest{Text: &text})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuestionDeleteClosesOrderGap(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	first := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "First", Type: string(model.ShortResponse)})
	second := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "Second", Type: string(model.ShortResponse)})
	third := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "Third", Type: string(model.ShortResponse)})

	require.NoError(t, env.questions.Delete(ownerID, form.ID, second.ID))

	questions, err := env.questions.GetAll(ownerID, form.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, first.ID, questions[0].ID)
	assert.Equal(t, 1, questions[0].Order)
	assert.Equal(t, third.ID, questions[1].ID)
	assert.Equal(t, 2, questions[1].Order, "the gap left by the delete is closed")

	// Appending after the delete continues the contiguous sequence.
	fourth := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "Fourth", Type: string(model.ShortResponse)})
	assert.Equal(t, 3, fourth.Order)
}

func TestQuestionDeleteRemovesAnswers(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	name := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "Name", Type: string(model.ShortResponse)})
	color := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text:    "Color",
		Type:    string(model.SelectOneOption),
		Options: []string{"Red", "Blue"},
	})
	env.publish(t, form.ID)

	_, err := env.submissions.Submit(form.ID, dto.SubmitFormRequest{Answers: []dto.AnswerInput{
		{QuestionID: name.ID, Type: string(model.ShortResponse), Text: "Alice"},
		{QuestionID: color.ID, Type: string(model.SelectOneOption), OptionID: uintPtr(color.Options[0].ID)},
	}})
	require.NoError(t, err)

	require.NoError(t, env.questions.Delete(ownerID, form.ID, color.ID))

	var remaining []model.Answer
	require.NoError(t, env.db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, name.ID, remaining[0].QuestionID)

	var joinRows int64
	require.NoError(t, env.db.Table("answer_options").Count(&joinRows).Error)
	assert.Zero(t, joinRows)
}
