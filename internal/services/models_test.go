package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, time.January, 10))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-10"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &parsed))
	assert.Equal(t, NewDate(2024, time.February, 29), parsed)

	assert.Error(t, json.Unmarshal([]byte(`"10.01.2024"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`20240110`), &parsed))
}

func TestDateOf_TruncatesTimeOfDay(t *testing.T) {
	instant := time.Date(2024, time.January, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, NewDate(2024, time.January, 10), DateOf(instant))
}
