package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Berlin Brandenburg", "berlin-brandenburg"},
		{"John F. Kennedy International", "john-f-kennedy-international"},
		{"  Heathrow  ", "heathrow"},
		{"A320neo", "a320neo"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorage(dir, "/media")

	url, err := storage.Save(KindAirport, "Berlin Brandenburg", "photo.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/media/uploads/airports/berlin-brandenburg-"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	relative := strings.TrimPrefix(url, "/media/")
	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relative)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	storage := NewStorage(t.TempDir(), "/media")

	first, err := storage.Save(KindAirplane, "Skyliner", "a.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := storage.Save(KindAirplane, "Skyliner", "a.jpg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
