package content

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openelearn/scormpack/pkg/scormpack"
)

const nestedManifest = `<?xml version="1.0"?>
<manifest identifier="com.example.nested" version="1.0"
    xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_rootv1p2">
  <organizations default="ORG-1">
    <organization identifier="ORG-1">
      <title>Widgets 101</title>
      <item identifier="MODULE-1">
        <title>Module 1</title>
        <item identifier="LESSON-1" identifierref="RES-1">
          <title>Lesson 1</title>
          <adlcp:prerequisites>LESSON-0</adlcp:prerequisites>
          <adlcp:maxtimeallowed>01:00:00</adlcp:maxtimeallowed>
          <adlcp:masteryscore>80</adlcp:masteryscore>
          <item identifier="PAGE-1">
            <title>Page 1</title>
          </item>
        </item>
      </item>
    </organization>
    <organization identifier="ORG-2">
      <title>Alternate Outline</title>
    </organization>
  </organizations>
  <resources>
    <resource identifier="RES-1" type="webcontent" href="index.html">
      <file href="index.html"/>
      <file href="styles/main.css"/>
      <file href="missing/ghost.js"/>
      <dependency identifierref="RES-SHARED"/>
    </resource>
    <resource identifier="RES-SHARED" type="webcontent" href="shared/logo.png">
      <file href="shared/logo.png"/>
    </resource>
  </resources>
</manifest>`

func buildPackage(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func nestedPackage(t *testing.T) []byte {
	t.Helper()
	return buildPackage(t, map[string]string{
		"imsmanifest.xml": nestedManifest,
		"index.html":      "<html>lesson</html>",
		"styles/main.css": "body{}",
		"shared/logo.png": "PNGDATA",
	})
}

func TestExtract_Organizations(t *testing.T) {
	cnt, err := Extract(nestedPackage(t))
	require.NoError(t, err)

	require.Len(t, cnt.Organizations, 2)
	org := cnt.Organizations[0]
	assert.Equal(t, "ORG-1", org.Identifier)
	assert.Equal(t, "Widgets 101", org.Title)

	require.Len(t, org.Items, 1)
	module := org.Items[0]
	assert.Equal(t, "MODULE-1", module.Identifier)
	assert.Empty(t, module.ResourceID)

	require.Len(t, module.Children, 1)
	lesson := module.Children[0]
	assert.Equal(t, "LESSON-1", lesson.Identifier)
	assert.Equal(t, "RES-1", lesson.ResourceID)
	assert.Equal(t, "LESSON-0", lesson.Prerequisites)
	assert.Equal(t, "01:00:00", lesson.TimeLimit)
	assert.Equal(t, "80", lesson.MasteryScore)

	require.Len(t, lesson.Children, 1)
	assert.Equal(t, "PAGE-1", lesson.Children[0].Identifier)

	assert.Equal(t, "Alternate Outline", cnt.Organizations[1].Title)
	assert.Empty(t, cnt.Organizations[1].Items)
}

func TestExtract_Resources(t *testing.T) {
	cnt, err := Extract(nestedPackage(t))
	require.NoError(t, err)

	require.Len(t, cnt.Resources, 2)
	res := cnt.Resources[0]
	assert.Equal(t, "RES-1", res.Identifier)
	assert.Equal(t, "webcontent", res.Type)
	assert.Equal(t, "index.html", res.Href)
	assert.Equal(t, []string{"RES-SHARED"}, res.Dependencies)

	// ghost.js is declared but absent from the archive: skipped silently.
	require.Len(t, res.Files, 2)
	assert.Equal(t, "index.html", res.Files[0].Href)
	assert.Equal(t, "<html>lesson</html>", string(res.Files[0].Content))
	assert.Equal(t, "text/html", res.Files[0].MimeType)
	assert.Equal(t, "styles/main.css", res.Files[1].Href)
	assert.Equal(t, "text/css", res.Files[1].MimeType)
}

func TestExtract_MissingFileSkippedWithoutError(t *testing.T) {
	blob := buildPackage(t, map[string]string{
		"imsmanifest.xml": nestedManifest,
	})
	cnt, err := Extract(blob)
	require.NoError(t, err)

	for _, res := range cnt.Resources {
		assert.Empty(t, res.Files)
	}
}

func TestExtract_ManifestMissing(t *testing.T) {
	blob := buildPackage(t, map[string]string{"index.html": "page"})
	_, err := Extract(blob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scormpack.ErrManifestMissing))
}

func TestExtract_InvalidArchive(t *testing.T) {
	_, err := Extract([]byte("not a zip"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, scormpack.ErrInvalidArchive))
}

func TestExtract_MalformedManifest(t *testing.T) {
	blob := buildPackage(t, map[string]string{
		"imsmanifest.xml": "<manifest><organizations>",
	})
	_, err := Extract(blob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scormpack.ErrMalformedManifest))
}

func TestExtract_MetadataAttached(t *testing.T) {
	blob := buildPackage(t, map[string]string{
		"imsmanifest.xml": `
<manifest identifier="m" version="1">
  <metadata><lom><general><title><string>Attached</string></title></general></lom></metadata>
  <organizations default="ORG-1"><organization identifier="ORG-1"/></organizations>
  <resources/>
</manifest>`,
	})
	cnt, err := Extract(blob)
	require.NoError(t, err)
	require.NotNil(t, cnt.Metadata.General)
	assert.Equal(t, "Attached", cnt.Metadata.General.Title)
}

func TestExtract_MimeOverrides(t *testing.T) {
	blob := buildPackage(t, map[string]string{
		"imsmanifest.xml": `
<manifest identifier="m" version="1">
  <organizations default="ORG-1"><organization identifier="ORG-1"/></organizations>
  <resources>
    <resource identifier="RES-1" type="webcontent" href="lesson.widget">
      <file href="lesson.widget"/>
    </resource>
  </resources>
</manifest>`,
		"lesson.widget": "widget bytes",
	})

	extractor := New(WithMimeOverrides(map[string]string{".widget": "application/x-widget"}))
	cnt, err := extractor.Extract(blob)
	require.NoError(t, err)

	require.Len(t, cnt.Resources, 1)
	require.Len(t, cnt.Resources[0].Files, 1)
	assert.Equal(t, "application/x-widget", cnt.Resources[0].Files[0].MimeType)
}

func TestExtract_ResourceBaseResolution(t *testing.T) {
	blob := buildPackage(t, map[string]string{
		"imsmanifest.xml": `
<manifest identifier="m" version="1">
  <organizations default="ORG-1"><organization identifier="ORG-1"/></organizations>
  <resources>
    <resource identifier="RES-1" type="webcontent" href="page.html" xml:base="content/">
      <file href="page.html"/>
    </resource>
  </resources>
</manifest>`,
		"content/page.html": "based page",
	})
	cnt, err := Extract(blob)
	require.NoError(t, err)

	require.Len(t, cnt.Resources[0].Files, 1)
	assert.Equal(t, "based page", string(cnt.Resources[0].Files[0].Content))
}

func TestExtract_ManifestTextPreserved(t *testing.T) {
	cnt, err := Extract(nestedPackage(t))
	require.NoError(t, err)
	assert.Equal(t, nestedManifest, cnt.Manifest)
}
