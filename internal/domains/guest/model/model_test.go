package model_test

import (
	"frontdesk/internal/domains/guest/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuest_Name(t *testing.T) {
	assert.Equal(t, "Ivanov Ivan", model.Guest{FullName: " Ivanov Ivan "}.Name())
	assert.Equal(t, "Ivanov Ivan Petrovich", model.Guest{FirstName: "Ivan", LastName: "Ivanov", MiddleName: "Petrovich"}.Name())
	assert.Equal(t, "Ivanov Ivan", model.Guest{FirstName: "Ivan", LastName: "Ivanov"}.Name())
}

func TestGuest_Matches(t *testing.T) {
	guest := model.Guest{FullName: "Aigerim Nurlanovna", Phone: "+7 701 555 1234", Email: "Aigerim@Example.com"}

	tests := []struct {
		search string
		want   bool
	}{
		{search: "", want: true},
		{search: "  ", want: true},
		{search: "aigerim", want: true},
		{search: "NURLAN", want: true},
		{search: "555", want: true},
		{search: "example.com", want: true},
		{search: "smith", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			assert.Equal(t, tt.want, guest.Matches(tt.search))
		})
	}
}

func TestCountByStanding(t *testing.T) {
	stats := model.CountByStanding([]model.Guest{{ID: 1}, {ID: 2, Blacklisted: true}, {ID: 3}})

	assert.Equal(t, model.Stats{Total: 3, Active: 2, Blacklisted: 1}, stats)
	assert.Equal(t, model.Stats{}, model.CountByStanding(nil))
}

func TestSortNationalities(t *testing.T) {
	nationalities := []model.Nationality{
		{ID: 1, Nationality: "Узбекистан"},
		{ID: 2, Nationality: "Германия"},
		{ID: 3, Nationality: "Республика Казахстан"},
		{ID: 4, Nationality: "азербайджан"},
	}

	model.SortNationalities(nationalities, "Казахстан")

	ids := make([]int64, 0, len(nationalities))
	for _, n := range nationalities {
		ids = append(ids, n.ID)
	}

	assert.Equal(t, []int64{3, 4, 2, 1}, ids)

	t.Run("no home nationality keeps plain alphabetical order", func(t *testing.T) {
		nationalities := []model.Nationality{{ID: 1, Nationality: "b"}, {ID: 2, Nationality: "A"}}

		model.SortNationalities(nationalities, "")

		assert.Equal(t, int64(2), nationalities[0].ID)
	})
}
