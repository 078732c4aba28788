package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhvu/formforge/internal/model"
)

func TestFind(t *testing.T) {
	tpl, found := Find("ticketing")
	require.True(t, found)
	assert.Equal(t, "Ticketing Form", tpl.Name)
	assert.Equal(t, "Support", tpl.Category)

	_, found = Find("does-not-exist")
	assert.False(t, found)
}

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool)
	for _, tpl := range all {
		assert.False(t, seen[tpl.ID], "duplicate template id %q", tpl.ID)
		seen[tpl.ID] = true

		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Category)
		require.NotEmpty(t, tpl.Questions, "template %q has no questions", tpl.ID)

		for _, q := range tpl.Questions {
			assert.NotEmpty(t, q.Text)
			switch q.Type {
			case model.ShortResponse:
				assert.Empty(t, q.Options, "short response question %q carries options", q.Text)
			case model.SelectOneOption, model.SelectMultipleOptions:
				assert.NotEmpty(t, q.Options, "selection question %q has no options", q.Text)
			default:
				t.Errorf("template %q question %q has unknown type %q", tpl.ID, q.Text, q.Type)
			}
		}
	}
}

func TestCategoriesGroupTheWholeCatalog(t *testing.T) {
	grouped := Categories()

	var total int
	for _, templates := range grouped {
		total += len(templates)
	}
	assert.Equal(t, len(All()), total)
	assert.Contains(t, grouped, "Support")
}

func TestTicketingLabels(t *testing.T) {
	tpl, found := Find("ticketing")
	require.True(t, found)

	// The helpdesk bridge matches on these exact labels.
	labels := make([]string, len(tpl.Questions))
	for i, q := range tpl.Questions {
		labels[i] = q.Text
	}
	assert.Equal(t, []string{"Seat Number", "Name", "Email", "Subject", "Description"}, labels)
}
