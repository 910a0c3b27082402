package todo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTask() Task {
	desc := "Old Desc"
	due := NewDate(2024, time.January, 1)
	return Task{
		ID:          "task-1",
		Title:       "Old Title",
		Description: &desc,
		DueDate:     &due,
		IsCompleted: false,
		CreatedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPatch_AbsentVsNullVsValue(t *testing.T) {
	var patch Patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","description":null}`), &patch))

	assert.True(t, patch.Title.IsSet())
	assert.False(t, patch.Title.IsNull())
	assert.True(t, patch.Description.IsSet())
	assert.True(t, patch.Description.IsNull())
	assert.False(t, patch.DueDate.IsSet())
	assert.False(t, patch.IsCompleted.IsSet())
}

func TestPatch_AbsenceSurvivesWireRoundTrip(t *testing.T) {
	// A patch travels between modules as JSON; fields absent from the
	// original payload must stay absent after re-encoding.
	var patch Patch
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &patch))

	encoded, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":null}`, string(encoded))

	var decoded Patch
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.False(t, decoded.Title.IsSet())
	assert.True(t, decoded.Description.IsNull())
}

func TestPatch_ApplyMergesOnlyPresentFields(t *testing.T) {
	task := sampleTask()

	merged := Patch{Title: Some("Save a cat")}.Apply(task)

	assert.Equal(t, "Save a cat", merged.Title)
	assert.Equal(t, task.Description, merged.Description)
	assert.Equal(t, task.DueDate, merged.DueDate)
	assert.Equal(t, task.IsCompleted, merged.IsCompleted)
	assert.Equal(t, task.ID, merged.ID)
	assert.True(t, task.CreatedAt.Equal(merged.CreatedAt))
}

func TestPatch_ApplyClearsNullableFields(t *testing.T) {
	task := sampleTask()

	merged := Patch{
		Description: Null[string](),
		DueDate:     Null[Date](),
	}.Apply(task)

	assert.Nil(t, merged.Description)
	assert.Nil(t, merged.DueDate)
	assert.Equal(t, task.Title, merged.Title)
}

func TestPatch_ApplyFlipsCompletion(t *testing.T) {
	task := sampleTask()

	completed := Patch{IsCompleted: Some(true)}.Apply(task)
	assert.True(t, completed.IsCompleted)

	reopened := Patch{IsCompleted: Some(false)}.Apply(completed)
	assert.False(t, reopened.IsCompleted)
	assert.Equal(t, task.Title, reopened.Title)
	assert.True(t, task.CreatedAt.Equal(reopened.CreatedAt))
}

func TestPatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"null title rejected", `{"title":null}`, ErrTitleNull},
		{"empty title rejected", `{"title":"   "}`, ErrTitleRequired},
		{"null isCompleted rejected", `{"isCompleted":null}`, ErrCompletedNull},
		{"empty patch allowed", `{}`, nil},
		{"null description allowed", `{"description":null}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch Patch
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &patch))

			err := patch.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPatch_ValidateTrimsValues(t *testing.T) {
	var patch Patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"  Save a cat  "}`), &patch))

	require.NoError(t, patch.Validate())
	title, ok := patch.Title.Get()
	require.True(t, ok)
	assert.Equal(t, "Save a cat", title)
}
