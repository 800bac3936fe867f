package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(path, title string) *VideoRecord {
	return &VideoRecord{
		Language:    "English",
		Length:      "01:45:00.000000",
		FullPath:    path,
		FullSubPath: SubtitlePath(path),
		Title:       title,
		Director:    "Someone",
		Year:        "2019",
		Genres:      []string{"Drama", "Thriller"},
	}
}

func TestStore_InsertAndGetByPath(t *testing.T) {
	store := NewStore(setupTestDB(t))

	rec := testRecord("/media/movies/Heat.1995.mkv", "Heat")
	require.NoError(t, store.Insert(rec))
	assert.NotZero(t, rec.ID)
	assert.False(t, rec.AddedAt.IsZero())

	got, err := store.GetByPath("/media/movies/Heat.1995.mkv")
	require.NoError(t, err)
	assert.Equal(t, "Heat", got.Title)
	assert.Equal(t, "/media/movies/Heat.srt", got.FullSubPath)
	assert.Equal(t, []string{"Drama", "Thriller"}, got.Genres)
}

func TestStore_Insert_DuplicatePath(t *testing.T) {
	store := NewStore(setupTestDB(t))

	require.NoError(t, store.Insert(testRecord("/media/a.mkv", "A")))
	err := store.Insert(testRecord("/media/a.mkv", "A again"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStore_GetByPath_NotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.GetByPath("/media/missing.mkv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_All_OrderedByTitle(t *testing.T) {
	store := NewStore(setupTestDB(t))

	require.NoError(t, store.Insert(testRecord("/media/z.mkv", "Zodiac")))
	require.NoError(t, store.Insert(testRecord("/media/a.mkv", "Alien")))
	require.NoError(t, store.Insert(testRecord("/media/m.mkv", "Memento")))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alien", all[0].Title)
	assert.Equal(t, "Memento", all[1].Title)
	assert.Equal(t, "Zodiac", all[2].Title)
}

func TestStore_All_EmptyGenres(t *testing.T) {
	store := NewStore(setupTestDB(t))

	rec := testRecord("/media/a.mkv", "A")
	rec.Genres = nil
	require.NoError(t, store.Insert(rec))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Genres)
}

func TestStore_DeleteByPath(t *testing.T) {
	store := NewStore(setupTestDB(t))

	require.NoError(t, store.Insert(testRecord("/media/a.mkv", "A")))
	require.NoError(t, store.DeleteByPath("/media/a.mkv"))

	_, err := store.GetByPath("/media/a.mkv")
	assert.ErrorIs(t, err, ErrNotFound)

	// Idempotent: deleting again is not an error.
	assert.NoError(t, store.DeleteByPath("/media/a.mkv"))
}

func TestStore_Paths(t *testing.T) {
	store := NewStore(setupTestDB(t))

	require.NoError(t, store.Insert(testRecord("/media/a.mkv", "A")))
	require.NoError(t, store.Insert(testRecord("/media/b.mkv", "B")))

	paths, err := store.Paths()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"/media/a.mkv": true, "/media/b.mkv": true}, paths)
}

func TestVideoRecord_LengthSeconds(t *testing.T) {
	tests := []struct {
		length string
		want   int
	}{
		{"01:45:00.000000", 6300},
		{"00:02:05.500000", 125},
		{"02:00:00", 7200},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		r := &VideoRecord{Length: tt.length}
		assert.Equal(t, tt.want, r.LengthSeconds(), "length %q", tt.length)
	}
}

func TestSubtitlePath(t *testing.T) {
	assert.Equal(t, "/media/movies/Heat.srt", SubtitlePath("/media/movies/Heat.mkv"))
	assert.Equal(t, "/media/show.S01E02.srt", SubtitlePath("/media/show.S01E02.mp4"))
}
