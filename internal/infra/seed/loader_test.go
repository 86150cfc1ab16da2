package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroya/consultation-service/pkg/types"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "availability-rules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeSeedFile(t, `{
		"2026-01-01": "UNAVAILABLE",
		"2026-03-08": ["10:00", "11:00"]
	}`)

	table, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, table, 2)

	holiday := table["2026-01-01"]
	require.NotNil(t, holiday)
	assert.True(t, holiday.WholeDayUnavailable)
	assert.Empty(t, holiday.AllowedTimes)

	restricted := table["2026-03-08"]
	require.NotNil(t, restricted)
	assert.False(t, restricted.WholeDayUnavailable)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, restricted.AllowedTimes)
}

func TestLoader_Load_EmptyObject(t *testing.T) {
	path := writeSeedFile(t, `{}`)

	table, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.json")).Load()
	assert.ErrorIs(t, err, ErrReadFile)
}

func TestLoader_Load_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":           `not json at all`,
		"invalid date key":   `{"2026-13-40": "UNAVAILABLE"}`,
		"unknown marker":     `{"2026-01-01": "CLOSED"}`,
		"invalid time":       `{"2026-01-01": ["25:00"]}`,
		"unsupported number": `{"2026-01-01": 42}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeSeedFile(t, content)
			_, err := NewLoader(path).Load()
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
