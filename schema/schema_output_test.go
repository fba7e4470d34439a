package schema_test

import (
	"testing"

	"github.com/huangsam/pdpboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgressLabel(t *testing.T) {
	tests := []struct {
		name       string
		completion float64
		expected   string
	}{
		{"Complete", 100.0, "Complete"},
		{"Advanced Upper", 99.9, "Advanced"},
		{"Advanced Lower", 60.0, "Advanced"},
		{"Underway Upper", 59.9, "Underway"},
		{"Underway Lower", 30.0, "Underway"},
		{"Early Upper", 29.9, "Early"},
		{"Early Lower", 0.1, "Early"},
		{"Idle", 0.0, "Idle"},
		{"Negative", -5.0, "Idle"}, // Edge case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.GetProgressLabel(tt.completion))
		})
	}
}

func TestCardRows(t *testing.T) {
	d := schema.ProjectDetail{}
	for _, stage := range schema.StageNames() {
		d.Cards = append(d.Cards, schema.ProgressCard{Stage: stage})
	}

	rows := d.CardRows(schema.CardsPerRow)
	require.Len(t, rows, 4)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[3], 2)
	assert.Equal(t, schema.StageDeploy, rows[3][1].Stage)

	assert.Len(t, d.CardRows(0), 4, "non-positive width falls back to the default")
	assert.Len(t, d.CardRows(11), 1)
	assert.Empty(t, schema.ProjectDetail{}.CardRows(3))
}
