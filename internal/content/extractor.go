package content

import (
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"

	"github.com/openelearn/scormpack/internal/archive"
	"github.com/openelearn/scormpack/internal/lom"
	"github.com/openelearn/scormpack/internal/xmldoc"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for skip notices and diagnostics.
func WithLogger(logger scormpack.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithMimeOverrides adds or replaces extension-to-MIME mappings for this
// extractor only. Keys are extensions including the leading dot.
func WithMimeOverrides(overrides map[string]string) Option {
	return func(e *Extractor) {
		for ext, mime := range overrides {
			e.mimeOverrides[strings.ToLower(ext)] = mime
		}
	}
}

// Extractor builds the Content model from a package archive.
// The zero-configured extractor from New is ready to use and safe for
// concurrent calls.
type Extractor struct {
	logger        scormpack.Logger
	mimeOverrides map[string]string
}

// New creates a content extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{mimeOverrides: make(map[string]string)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract opens blob as a package archive and builds its Content model.
// It fails when the blob is not a zip archive, when the manifest entry
// is absent, or when the manifest is not well-formed XML. Declared files
// missing from the archive are skipped, never an error.
func (e *Extractor) Extract(blob []byte) (*scormpack.Content, error) {
	reader, err := archive.Open(blob)
	if err != nil {
		return nil, err
	}

	manifestText, err := reader.Manifest()
	if err != nil {
		return nil, err
	}

	root, err := xmldoc.Parse(manifestText)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", scormpack.ManifestFileName, err)
	}

	return &scormpack.Content{
		Manifest:      manifestText,
		Organizations: e.extractOrganizations(root),
		Resources:     e.extractResources(root, reader),
		Metadata:      lom.FromManifest(root),
	}, nil
}

// Extract builds the Content model with a default extractor.
func Extract(blob []byte) (*scormpack.Content, error) {
	return New().Extract(blob)
}

func (e *Extractor) extractOrganizations(root *etree.Element) []scormpack.Organization {
	var orgs []scormpack.Organization
	organizations := xmldoc.FirstChild(root, "organizations")
	for _, el := range xmldoc.Children(organizations, "organization") {
		orgs = append(orgs, scormpack.Organization{
			Identifier: xmldoc.Attr(el, "identifier"),
			Title:      titleOf(el),
			Items:      e.extractItems(el),
		})
	}
	return orgs
}

// extractItems maps the direct <item> children of el, recursing into
// each; item trees nest to arbitrary depth.
func (e *Extractor) extractItems(el *etree.Element) []scormpack.Item {
	var items []scormpack.Item
	for _, it := range xmldoc.Children(el, "item") {
		items = append(items, scormpack.Item{
			Identifier:    xmldoc.Attr(it, "identifier"),
			Title:         titleOf(it),
			ResourceID:    xmldoc.Attr(it, "identifierref"),
			Prerequisites: elementOrAttr(it, "prerequisites"),
			TimeLimit:     elementOrAttr(it, "maxtimeallowed"),
			MasteryScore:  elementOrAttr(it, "masteryscore"),
			Children:      e.extractItems(it),
		})
	}
	return items
}

func (e *Extractor) extractResources(root *etree.Element, reader *archive.Reader) []scormpack.Resource {
	var out []scormpack.Resource
	resources := xmldoc.FirstChild(root, "resources")
	base := xmldoc.Attr(resources, "base")

	for _, el := range xmldoc.Children(resources, "resource") {
		res := scormpack.Resource{
			Identifier: xmldoc.Attr(el, "identifier"),
			Type:       xmldoc.Attr(el, "type"),
			Href:       xmldoc.Attr(el, "href"),
		}
		resBase := joinBase(base, xmldoc.Attr(el, "base"))

		for _, f := range xmldoc.Children(el, "file") {
			href := xmldoc.Attr(f, "href")
			if href == "" {
				continue
			}
			data, ok := reader.Entry(joinBase(resBase, href))
			if !ok {
				// Stale manifest entry: skip, keep the rest of the resource.
				if e.logger != nil {
					e.logger.Verbose("resource %s: declared file %q not in archive, skipping", res.Identifier, href)
				}
				continue
			}
			res.Files = append(res.Files, scormpack.File{
				Href:     href,
				Content:  data,
				MimeType: e.mimeType(href),
			})
		}

		for _, dep := range xmldoc.Children(el, "dependency") {
			if ref := xmldoc.Attr(dep, "identifierref"); ref != "" {
				res.Dependencies = append(res.Dependencies, ref)
			}
		}
		out = append(out, res)
	}
	return out
}

func (e *Extractor) mimeType(href string) string {
	ext := strings.ToLower(path.Ext(href))
	if mime, ok := e.mimeOverrides[ext]; ok {
		return mime
	}
	return MimeType(href)
}

// titleOf reads the SCORM <title> child element, falling back to a
// title attribute some authoring tools emit instead.
func titleOf(el *etree.Element) string {
	if title := xmldoc.ChildText(el, "title"); title != "" {
		return title
	}
	return xmldoc.Attr(el, "title")
}

// elementOrAttr reads an adlcp value declared either as a child element
// (the 1.2 binding) or as an attribute, by local name.
func elementOrAttr(el *etree.Element, name string) string {
	if v := xmldoc.ChildText(el, name); v != "" {
		return v
	}
	return xmldoc.Attr(el, name)
}

// joinBase concatenates xml:base style path fragments with the href.
func joinBase(base, href string) string {
	if base == "" {
		return href
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(href, "/")
}
