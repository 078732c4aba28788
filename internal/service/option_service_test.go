package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/model"
)

func TestOptionCreateAppends(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	q := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text:    "Color",
		Type:    string(model.SelectOneOption),
		Options: []string{"Red"},
	})

	option, err := env.options.Create(ownerID, form.ID, q.ID, dto.CreateOptionRequest{OptionText: "Blue"})
	require.NoError(t, err)
	assert.Equal(t, 2, option.Order)
	assert.Equal(t, "Blue", option.OptionText)
}

func TestOptionCreateRejectedOnShortResponse(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	q := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{Text: "Name", Type: string(model.ShortResponse)})

	_, err := env.options.Create(ownerID, form.ID, q.ID, dto.CreateOptionRequest{OptionText: "Blue"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOptionUpdateText(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	q := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text:    "Color",
		Type:    string(model.SelectOneOption),
		Options: []string{"Red", "Blue"},
	})

	updated, err := env.options.UpdateText(ownerID, form.ID, q.ID, q.Options[1].ID, dto.UpdateOptionRequest{OptionText: "Navy"})
	require.NoError(t, err)
	assert.Equal(t, "Navy", updated.OptionText)
	assert.Equal(t, 2, updated.Order, "renaming keeps the position")
}

func TestOptionDeleteKeepsSiblingOrders(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	q := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text:    "Color",
		Type:    string(model.SelectOneOption),
		Options: []string{"Red", "Green", "Blue"},
	})

	require.NoError(t, env.options.Delete(ownerID, form.ID, q.ID, q.Options[1].ID))

	questions, err := env.questions.GetAll(ownerID, form.ID)
	require.NoError(t, err)
	require.Len(t, questions[0].Options, 2)
	assert.Equal(t, 1, questions[0].Options[0].Order)
	assert.Equal(t, 3, questions[0].Options[1].Order, "option orders keep their gaps")

	// A new option still lands after the highest surviving order.
	added, err := env.options.Create(ownerID, form.ID, q.ID, dto.CreateOptionRequest{OptionText: "Cyan"})
	require.NoError(t, err)
	assert.Equal(t, 4, added.Order)
}

func TestOptionCrossQuestionRejected(t *testing.T) {
	env := newTestEnv(t)
	form := env.createForm(t, "Survey")
	qa := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text: "A", Type: string(model.SelectOneOption), Options: []string{"X"},
	})
	qb := env.addQuestion(t, form.ID, dto.CreateQuestionRequest{
		Text: "B", Type: string(model.SelectOneOption), Options: []string{"Y"},
	})

	_, err := env.options.UpdateText(ownerID, form.ID, qb.ID, qa.Options[0].ID, dto.UpdateOptionRequest{OptionText: "Z"})
	assert.ErrorIs(t, err, ErrValidation)

	err = env.options.Delete(ownerID, form.ID, qb.ID, qa.Options[0].ID)
	assert.ErrorIs(t, err, ErrValidation)
}
