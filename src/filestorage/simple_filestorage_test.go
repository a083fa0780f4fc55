package filestorage

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareCreatesNestedDir(t *testing.T) {
	location := filepath.Join(t.TempDir(), "public", "help-images")
	s := NewSimpleFileStorage(location)

	require.NoError(t, s.Prepare())
	info, err := os.Stat(location)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// 再次调用不报错
	assert.NoError(t, s.Prepare())
}

func TestPrepareFailsOnFile(t *testing.T) {
	location := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, ioutil.WriteFile(location, []byte("x"), 0644))

	s := NewSimpleFileStorage(location)
	assert.Error(t, s.Prepare())
}

func TestExists(t *testing.T) {
	location := t.TempDir()
	s := NewSimpleFileStorage(location)

	assert.Equal(t, filepath.Join(location, "pic.jpg"), s.Path("pic.jpg"))
	assert.False(t, s.Exists("pic.jpg"))

	require.NoError(t, ioutil.WriteFile(s.Path("pic.jpg"), []byte("jpg"), 0644))
	assert.True(t, s.Exists("pic.jpg"))
}
