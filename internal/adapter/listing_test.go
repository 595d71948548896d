// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apacheListing mimics a mod_autoindex fancy-index page: sort links in the
// header row, a parent-directory entry, files and a subdirectory.
const apacheListing = `<html><head><title>Index of /files</title></head><body>
<h1>Index of /files</h1>
<table>
<tr><th valign="top">&nbsp;</th><th><a href="?C=N;O=D">Name</a></th><th><a href="?C=M;O=A">Last modified</a></th><th><a href="?C=S;O=A">Size</a></th><th><a href="?C=D;O=A">Description</a></th></tr>
<tr><th colspan="5"><hr></th></tr>
<tr><td valign="top">&nbsp;</td><td><a href="/">Parent Directory</a></td><td>&nbsp;</td><td align="right">  - </td><td>&nbsp;</td></tr>
<tr><td valign="top">&nbsp;</td><td><a href="G2-W08-2-a.laz">G2-W08-2-a.laz</a></td><td align="right">2026-05-01 10:00  </td><td align="right">176M</td><td>&nbsp;</td></tr>
<tr><td valign="top">&nbsp;</td><td><a href="readme.TXT">readme.TXT</a></td><td align="right">2026-05-02 11:30  </td><td align="right">734</td><td>&nbsp;</td></tr>
<tr><td valign="top">&nbsp;</td><td><a href="archive/">archive/</a></td><td align="right">2026-05-03 09:15  </td><td align="right">  - </td><td>&nbsp;</td></tr>
</table>
</body></html>`

func listingBase(t *testing.T) *url.URL {
	t.Helper()
	base, err := url.Parse("http://example.com/files/")
	require.NoError(t, err)
	return base
}

func TestParseListing_AllFiles(t *testing.T) {
	files, err := parseListing(strings.NewReader(apacheListing), listingBase(t), "")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "G2-W08-2-a.laz", files[0].Name)
	assert.Equal(t, "http://example.com/files/G2-W08-2-a.laz", files[0].URL)
	assert.Equal(t, uint64(184549376), files[0].Size)
	assert.Equal(t, "2026-05-01 10:00", files[0].LastModified)

	assert.Equal(t, "readme.TXT", files[1].Name)
	assert.Equal(t, uint64(734), files[1].Size)
}

func TestParseListing_ExtensionFilterIsCaseInsensitive(t *testing.T) {
	laz, err := parseListing(strings.NewReader(apacheListing), listingBase(t), ".laz")
	require.NoError(t, err)
	require.Len(t, laz, 1)
	assert.Equal(t, "G2-W08-2-a.laz", laz[0].Name)

	txt, err := parseListing(strings.NewReader(apacheListing), listingBase(t), ".txt")
	require.NoError(t, err)
	require.Len(t, txt, 1)
	assert.Equal(t, "readme.TXT", txt[0].Name)
}

func TestParseListing_SkipsDirectoriesAndSortLinks(t *testing.T) {
	files, err := parseListing(strings.NewReader(apacheListing), listingBase(t), "")
	require.NoError(t, err)

	for _, f := range files {
		assert.NotContains(t, f.Name, "/")
		assert.False(t, strings.HasPrefix(f.Name, "?"))
	}
}

func TestParseListing_NoTable(t *testing.T) {
	_, err := parseListing(strings.NewReader("<html><body><p>not a listing</p></body></html>"), listingBase(t), "")
	assert.ErrorIs(t, err, ErrListingParse)
}

func TestParseContentRangeTotal(t *testing.T) {
	assert.Equal(t, uint64(1000), parseContentRangeTotal("bytes 400-999/1000"))
	assert.Zero(t, parseContentRangeTotal("bytes 400-999/*"))
	assert.Zero(t, parseContentRangeTotal(""))
}

func TestNormalizeBaseURL(t *testing.T) {
	u, err := normalizeBaseURL("example.com/files")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/files/", u.String())

	u, err = normalizeBaseURL("https://example.com/files/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/files/", u.String())

	_, err = normalizeBaseURL("   ")
	assert.ErrorIs(t, err, ErrConnection)
}
