package xmldoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openelearn/scormpack/pkg/scormpack"
)

func TestParse_WellFormed(t *testing.T) {
	root, err := Parse(`<manifest identifier="m1"><resources/></manifest>`)
	require.NoError(t, err)
	assert.Equal(t, "manifest", root.Tag)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(`<manifest><unclosed>`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scormpack.ErrMalformedManifest))
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scormpack.ErrMalformedManifest))
}

func TestLookups_IgnoreNamespacePrefixes(t *testing.T) {
	root, err := Parse(`
<manifest xmlns="http://www.imsproject.org/xsd/imscp_rootv1p1p2"
          xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_rootv1p2">
  <organizations default="ORG-1">
    <organization identifier="ORG-1">
      <item identifier="I1">
        <adlcp:prerequisites>I0</adlcp:prerequisites>
      </item>
    </organization>
  </organizations>
</manifest>`)
	require.NoError(t, err)

	organizations := FirstChild(root, "organizations")
	require.NotNil(t, organizations)
	assert.Equal(t, "ORG-1", Attr(organizations, "default"))

	item := FindAll(root, "item")
	require.Len(t, item, 1)
	assert.Equal(t, "I0", ChildText(item[0], "prerequisites"))
}

func TestAttr_PrefixedAttribute(t *testing.T) {
	root, err := Parse(`<item xmlns:adlcp="urn:x" adlcp:masteryscore="80"/>`)
	require.NoError(t, err)
	assert.Equal(t, "80", Attr(root, "masteryscore"))
	assert.True(t, HasAttr(root, "masteryscore"))
	assert.False(t, HasAttr(root, "timelimit"))
}

func TestChildren_OnlyDirect(t *testing.T) {
	root, err := Parse(`<root><a id="1"><a id="2"/></a><a id="3"/></root>`)
	require.NoError(t, err)

	direct := Children(root, "a")
	require.Len(t, direct, 2)
	assert.Equal(t, "1", Attr(direct[0], "id"))
	assert.Equal(t, "3", Attr(direct[1], "id"))
}

func TestFindAll_DepthFirstDocumentOrder(t *testing.T) {
	root, err := Parse(`<root><a id="1"><a id="2"/></a><b><a id="3"/></b></root>`)
	require.NoError(t, err)

	all := FindAll(root, "a")
	require.Len(t, all, 3)
	ids := []string{Attr(all[0], "id"), Attr(all[1], "id"), Attr(all[2], "id")}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestNilSafety(t *testing.T) {
	assert.Nil(t, FirstChild(nil, "x"))
	assert.Nil(t, Children(nil, "x"))
	assert.Nil(t, FindAll(nil, "x"))
	assert.Equal(t, "", Attr(nil, "x"))
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "", ChildText(nil, "x"))
	assert.False(t, HasAttr(nil, "x"))
}

func TestText_Trimmed(t *testing.T) {
	root, err := Parse("<title>\n  Sample Course \n</title>")
	require.NoError(t, err)
	assert.Equal(t, "Sample Course", Text(root))
}
