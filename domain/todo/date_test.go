package todo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.January, 1)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-01"`), &decoded))
	assert.True(t, d.Equal(decoded.Time))
}

func TestDate_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"timestamp instead of date", `"2025-01-01T10:00:00Z"`},
		{"wrong separator", `"2025/01/01"`},
		{"number", `20250101`},
		{"impossible day", `"2025-02-30"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tt.payload), &d))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", d.String())

	_, err = ParseDate("tomorrow")
	assert.Error(t, err)
}

func TestTask_PersistedShape(t *testing.T) {
	desc := "No pressure."
	due := NewDate(2025, time.January, 1)
	task := Task{
		ID:          "task-1",
		Title:       "Save the world",
		Description: &desc,
		DueDate:     &due,
		IsCompleted: false,
		CreatedAt:   time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}

	encoded, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "task-1",
		"title": "Save the world",
		"description": "No pressure.",
		"dueDate": "2025-01-01",
		"isCompleted": false,
		"createdAt": "2024-06-01T12:00:00Z"
	}`, string(encoded))
}

func TestTask_NullableFieldsEncodeAsNull(t *testing.T) {
	task := Task{
		ID:        "task-2",
		Title:     "Bare minimum",
		CreatedAt: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}

	encoded, err := json.Marshal(task)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"description":null`)
	assert.Contains(t, string(encoded), `"dueDate":null`)
}
