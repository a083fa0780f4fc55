package collector

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://example.com/eci/"

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&log.TextFormatter{DisableColors: true})
	return logger, &buf
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func keys(set map[string]struct{}) []string {
	var out []string
	for k := range set {
		out = append(out, k)
	}
	return out
}

func TestCollectEmptyDir(t *testing.T) {
	logger, _ := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", `{"UrlImage": "ignored.jpg"}`)

	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestCollectMissingDir(t *testing.T) {
	logger, _ := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	urls, err := c.Collect(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestCollectTopLevelAndRelated(t *testing.T) {
	logger, _ := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{
		"Id": 150,
		"Title": "Acciones",
		"UrlImage": "pic1.jpg",
		"RelatedContents": [
			{"Id": 151, "UrlImage": "assets/pic2.jpg"},
			{"Id": 152, "UrlImage": ""},
			{"Id": 153}
		]
	}`)

	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"https://example.com/eci/pic1.jpg",
		"https://example.com/eci/assets/pic2.jpg",
	}, keys(urls))
}

func TestCollectRecordWithoutImages(t *testing.T) {
	logger, _ := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"Id": 1, "Title": "no images"}`)
	writeFile(t, dir, "b.json", `{"UrlImage": "", "RelatedContents": null}`)
	writeFile(t, dir, "c.json", `{"RelatedContents": []}`)

	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestCollectDeduplicates(t *testing.T) {
	logger, _ := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"UrlImage": "img/shared.jpg"}`)
	writeFile(t, dir, "b.json", `{"UrlImage": "https://example.com/eci/img/shared.jpg",
		"RelatedContents": [{"UrlImage": "img/shared.jpg"}]}`)

	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/eci/img/shared.jpg"}, keys(urls))
}

func TestCollectAbsoluteURLUnchanged(t *testing.T) {
	logger, _ := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"UrlImage": "http://cdn.example.org/x/y.png"}`)

	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://cdn.example.org/x/y.png"}, keys(urls))
}

func TestCollectKeepsRawCharacters(t *testing.T) {
	logger, buf := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"UrlImage": "img/año 1.jpg",
		"RelatedContents": [{"UrlImage": "img/50%.jpg"}]}`)
	writeFile(t, dir, "b.json", `{"UrlImage": "https://example.com/eci/img/año 1.jpg",
		"RelatedContents": [{"UrlImage": "https://example.com/eci/img/50%.jpg"}]}`)

	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"https://example.com/eci/img/año 1.jpg",
		"https://example.com/eci/img/50%.jpg",
	}, keys(urls))
	assert.NotContains(t, buf.String(), "level=error")
}

func TestCollectSkipsBrokenFiles(t *testing.T) {
	logger, buf := newTestLogger()
	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"UrlImage": "lost.jpg"`)
	writeFile(t, dir, "list.json", `["not", "a", "record"]`)
	writeFile(t, dir, "good.json", `{"UrlImage": "kept.jpg"}`)

	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/eci/kept.jpg"}, keys(urls))
	assert.Contains(t, buf.String(), "fail to read help record")
	assert.Contains(t, buf.String(), "broken.json")
	assert.Contains(t, buf.String(), "list.json")
}

func TestCollectBodyImages(t *testing.T) {
	logger, _ := newTestLogger()

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"UrlImage": "cover.jpg", "Body": "<p>x</p><img src=img/150_Eq1.svg>"}`)

	c, err := NewSimpleCollector(logger, testBaseURL, false)
	require.NoError(t, err)
	urls, err := c.Collect(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/eci/cover.jpg"}, keys(urls))

	c, err = NewSimpleCollector(logger, testBaseURL, true)
	require.NoError(t, err)
	urls, err = c.Collect(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"https://example.com/eci/cover.jpg",
		"https://example.com/eci/img/150_Eq1.svg",
	}, keys(urls))
}

func TestNewSimpleCollectorInvalidBase(t *testing.T) {
	logger, _ := newTestLogger()
	_, err := NewSimpleCollector(logger, "http://[::1", false)
	assert.Error(t, err)

	_, err = NewSimpleCollector(logger, "eci/", false)
	assert.Error(t, err)
}
