package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmanet/pharmacy-console/internal/export"
)

type exportRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	Untagged  string
}

func TestWriteCSV(t *testing.T) {
	note := "present"
	rows := []exportRow{
		{
			ID:        1,
			Name:      "first",
			Note:      &note,
			CreatedAt: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC),
			Untagged:  "value",
		},
		{ID: 2, Name: "second"},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rows))

	assert.Equal(t,
		"id,name,note,created_at,Untagged\n"+
			"1,first,present,2026-08-31T12:00:00Z,value\n"+
			"2,second,,0001-01-01T00:00:00Z,\n",
		buf.String(),
	)
}

func TestWriteCSV_EmptySliceWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, []exportRow{}))
	assert.Zero(t, buf.Len())
}

func TestWriteCSV_RejectsNonStructItems(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, export.WriteCSV(&buf, []int{1, 2}))
}
