package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReaderReportsCumulativeBytes(t *testing.T) {
	var reports []int64
	r := NewProgressReader(strings.NewReader("0123456789"), 10, func(transferred, total int64) {
		assert.EqualValues(t, 10, total)
		reports = append(reports, transferred)
	})

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))
	require.NotEmpty(t, reports)
	assert.EqualValues(t, 10, reports[len(reports)-1])
	for i := 1; i < len(reports); i++ {
		assert.GreaterOrEqual(t, reports[i], reports[i-1])
	}
}

func TestProgressReaderNilCallback(t *testing.T) {
	r := NewProgressReader(strings.NewReader("abc"), 3, nil)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}
