package model_test

import (
	"frontdesk/internal/domains/agent/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgent_Matches(t *testing.T) {
	agent := model.Agent{
		FullTitle:  "ТОО Silk Road Travel",
		ShortTitle: "SRT",
		TaxID:      "180340021234",
		Phone:      "+7 727 300 0000",
	}

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{name: "empty", search: "", want: true},
		{name: "full title ignoring case", search: "silk road", want: true},
		{name: "cyrillic full title", search: "тоо", want: true},
		{name: "short title", search: "srt", want: true},
		{name: "tax id fragment", search: "0340", want: true},
		{name: "phone fragment", search: "727", want: true},
		{name: "miss", search: "steppe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, agent.Matches(tt.search))
		})
	}
}

func TestCountByActivity(t *testing.T) {
	stats := model.CountByActivity([]model.Agent{{IsActive: true}, {IsActive: false}, {IsActive: true}})

	assert.Equal(t, model.Stats{Total: 3, Active: 2, Inactive: 1}, stats)
}
