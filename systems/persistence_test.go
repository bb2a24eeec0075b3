package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore points gdata at a throwaway data directory.
func openTestStore(t *testing.T) *ScoreStore {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	store, err := OpenScoreStore("meowwwwtest")
	require.NoError(t, err)
	return store
}

func TestParseHighScore(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int
		wantErr bool
	}{
		{name: "plain", data: "42", want: 42},
		{name: "trailing newline", data: "1337\n", want: 1337},
		{name: "zero", data: "0", want: 0},
		{name: "empty", data: "", wantErr: true},
		{name: "garbage", data: "lots", wantErr: true},
		{name: "negative", data: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHighScore([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 0, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreStoreMissingIsZero(t *testing.T) {
	store := openTestStore(t)
	assert.Equal(t, 0, store.Load())
}

func TestScoreStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(57))
	assert.Equal(t, 57, store.Load())

	require.NoError(t, store.Save(3))
	assert.Equal(t, 3, store.Load(), "save replaces the previous value")
}

func TestScoreStoreCorruptIsZero(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.manager.SaveItem(store.key, []byte("not a number")))
	assert.Equal(t, 0, store.Load())
}

func TestNilScoreStore(t *testing.T) {
	var store *ScoreStore
	assert.Equal(t, 0, store.Load())
	assert.NoError(t, store.Save(10))
}

func TestSaveHighScoreFromSession(t *testing.T) {
	store := openTestStore(t)
	e := newTestECS(t)
	GetOrCreateSession(e).HighScore = 99

	SaveHighScore(e, store)

	assert.Equal(t, 99, store.Load())
}
