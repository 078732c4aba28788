package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
)

func TestFormLifecycle(t *testing.T) {
	env := newTestEnv(t)

	form := env.createForm(t, "Feedback")
	assert.NotZero(t, form.ID)
	assert.NotEmpty(t, form.PublicID)
	assert.False(t, form.Published)

	renamed, err := env.forms.Rename(ownerID, form.ID, "Customer Feedback")
	require.NoError(t, err)
	assert.Equal(t, "Customer Feedback", renamed.Title)
	assert.Equal(t, form.PublicID, renamed.PublicID, "renaming must not rotate the public link")

	published, err := env.forms.TogglePublish(ownerID, form.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)

	unpublished, err := env.forms.TogglePublish(ownerID, form.ID)
	require.NoError(t, err)
	assert.False(t, unpublished.Published)
}

func TestFormListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	env.createForm(t, "first")
	env.createForm(t, "second")

	forms, err := env.forms.GetAll(ownerID)
	require.NoError(t, err)
	require.Len(t, forms, 2)

	other, err := env.forms.GetAll(strangerID)
	require.NoError(t, err)
	assert.Empty(t, other, "listing is scoped to the caller")
}

func TestFormOwnershipGate(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Private")

	_, err := env.forms.Get(strangerID, form.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	_, err = env.forms.Rename(strangerID, form.ID, "hijacked")
	assert.ErrorIs(t, err, ErrNotOwned)

	err = env.forms.Delete(strangerID, form.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	_, err = env.forms.Get(ownerID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateFromTemplate(t *testing.T) {
	env := newTestEnv(t)

	form, err := env.forms.CreateFromTemplate(ownerID, "ticketing")
	require.NoError(t, err)
	assert.Equal(t, "Ticketing Form", form.Title)
	require.Len(t, form.Questions, 5)
	assert.Equal(t, "Seat Number", form.Questions[0].Text)

	for i, q := range form.Questions {
		assert.Equal(t, i+1, q.Order)
	}

	_, err = env.forms.CreateFromTemplate(ownerID, "no-such-template")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateFromTemplateWithOptions(t *testing.T) {
	env := newTestEnv(t)

	form, err := env.forms.CreateFromTemplate(ownerID, "customer-feedback")
	require.NoError(t, err)

	var withOptions int
	for _, q := range form.Questions {
		if q.Type != string(model.ShortResponse) {
			withOptions++
			require.NotEmpty(t, q.Options)
			for i, o := range q.Options {
				assert.Equal(t, i+1, o.Order)
			}
		}
	}
	assert.Greater(t, withOptions, 0, "template should carry selection questions")
}

func TestFormResponsesCount(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	name := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "Name", Type: string(model.ShortResponse)})
	color := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text: "Color", Type: string(model.SelectOneOption), Options: []string{"Red"},
	})
	env.publish(t, form.ID)

	for _, who := range []string{"Alice", "Bob"} {
		_, err := env.submissions.Submit(form.ID, dto.SubmitFormRequest{Answers: []dto.AnswerInput{
			{QuestionID: name.ID, Type: string(model.ShortResponse), Text: who},
			{QuestionID: color.ID, Type: string(model.SelectOneOption), OptionID: uintPtr(color.Options[0].ID)},
		}})
		require.NoError(t, err)
	}

	forms, err := env.forms.GetAll(ownerID)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.EqualValues(t, 2, forms[0].ResponsesCount, "submissions are counted, not answer rows")

	got, err := env.forms.Get(ownerID, form.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ResponsesCount)
}

func TestDeleteFormCascades(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	short := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "Name", Type: string(model.ShortResponse)})
	choice := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text:    "Color",
		Type:    string(model.SelectOneOption),
		Options: []string{"Red", "Blue"},
	})
	env.publish(t, form.ID)

	_, err := env.submissions.Submit(form.ID, dto.SubmitFormRequest{Answers: []dto.AnswerInput{
		{QuestionID: short.ID, Type: string(model.ShortResponse), Text: "Alice"},
		{QuestionID: choice.ID, Type: string(model.SelectOneOption), OptionID: uintPtr(choice.Options[0].ID)},
	}})
	require.NoError(t, err)

	require.NoError(t, env.forms.Delete(ownerID, form.ID))

	assert.Zero(t, env.countRows(t, &model.Form{}))
	assert.Zero(t, env.countRows(t, &model.Question{}))
	assert.Zero(t, env.countRows(t, &model.Option{}))
	assert.Zero(t, env.countRows(t, &model.Answer{}))
	assert.Zero(t, env.countRows(t, &model.Response{}), "responses with no remaining answers are removed")

	var joinRows int64
	require.NoError(t, env.db.Table("answer_options").Count(&joinRows).Error)
	assert.Zero(t, joinRows)
}
