package textract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>RENTAL AGREEMENT</w:t></w:r></w:p>
    <w:p><w:r><w:t>This agreement is made on the </w:t></w:r><w:r><w:t>1st April, 2008</w:t></w:r></w:p>
    <w:p><w:r><w:t>between John Mathew and Rita Fernandes.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeDOCX(t *testing.T, dir, name, xmlBody string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(xmlBody))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractDOCX(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), "lease.docx", documentXML)

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "docx-text", res.Method)
	assert.Equal(t, float32(1.0), res.Confidence)
	want := "RENTAL AGREEMENT\nThis agreement is made on the 1st April, 2008\nbetween John Mathew and Rita Fernandes."
	assert.Equal(t, want, res.Text)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "agreement.pdf")
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestExtractBestEffortNeverFails(t *testing.T) {
	e := NewExtractor(Config{}, nil)

	// missing file: empty text, warning recorded, no panic
	res := e.ExtractBestEffort(context.Background(), filepath.Join(t.TempDir(), "nope.docx"))
	assert.Empty(t, res.Text)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractDOCXCorruptContainer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), path)
	assert.ErrorContains(t, err, "open docx")
}
