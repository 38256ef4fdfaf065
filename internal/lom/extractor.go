package lom

import (
	"github.com/beevik/etree"

	"github.com/openelearn/scormpack/internal/xmldoc"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

// Extract pulls the LOM record out of manifestText. It never fails:
// unparsable XML or an absent metadata subtree yields an empty Metadata.
// logger may be nil.
func Extract(manifestText string, logger scormpack.Logger) scormpack.Metadata {
	root, err := xmldoc.Parse(manifestText)
	if err != nil {
		if logger != nil {
			logger.Warn("metadata extraction skipped: %v", err)
		}
		return scormpack.Metadata{}
	}
	return FromManifest(root)
}

// FromManifest extracts the LOM record from an already parsed manifest
// root. An absent metadata/lom subtree yields an empty Metadata.
func FromManifest(root *etree.Element) scormpack.Metadata {
	lomEl := xmldoc.FirstChild(xmldoc.FirstChild(root, "metadata"), "lom")
	if lomEl == nil {
		return scormpack.Metadata{}
	}

	return scormpack.Metadata{
		General:     extractGeneral(xmldoc.FirstChild(lomEl, "general")),
		Lifecycle:   extractLifecycle(firstChildAny(lomEl, "lifecycle", "lifeCycle")),
		Technical:   extractTechnical(xmldoc.FirstChild(lomEl, "technical")),
		Educational: extractEducational(xmldoc.FirstChild(lomEl, "educational")),
	}
}

func extractGeneral(el *etree.Element) *scormpack.GeneralMetadata {
	if el == nil {
		return nil
	}
	g := &scormpack.GeneralMetadata{
		Identifier:       identifierText(el),
		Title:            lomText(xmldoc.FirstChild(el, "title")),
		Language:         lomText(xmldoc.FirstChild(el, "language")),
		Description:      lomText(xmldoc.FirstChild(el, "description")),
		Coverage:         lomText(xmldoc.FirstChild(el, "coverage")),
		AggregationLevel: vocabValue(firstChildAny(el, "aggregationlevel", "aggregationLevel")),
	}
	for _, kw := range xmldoc.Children(el, "keyword") {
		if text := lomText(kw); text != "" {
			g.Keywords = append(g.Keywords, text)
		}
	}
	return g
}

func extractLifecycle(el *etree.Element) *scormpack.LifecycleMetadata {
	if el == nil {
		return nil
	}
	l := &scormpack.LifecycleMetadata{
		Version: lomText(xmldoc.FirstChild(el, "version")),
		Status:  vocabValue(xmldoc.FirstChild(el, "status")),
	}
	for _, c := range xmldoc.Children(el, "contribute") {
		l.Contributors = append(l.Contributors, scormpack.Contributor{
			Role:   vocabValue(xmldoc.FirstChild(c, "role")),
			Entity: entityText(c),
			Date:   dateText(xmldoc.FirstChild(c, "date")),
		})
	}
	return l
}

func extractTechnical(el *etree.Element) *scormpack.TechnicalMetadata {
	if el == nil {
		return nil
	}
	t := &scormpack.TechnicalMetadata{
		Size:     lomText(xmldoc.FirstChild(el, "size")),
		Location: lomText(xmldoc.FirstChild(el, "location")),
		Duration: dateText(xmldoc.FirstChild(el, "duration")),
	}
	for _, f := range xmldoc.Children(el, "format") {
		if text := lomText(f); text != "" {
			t.Formats = append(t.Formats, text)
		}
	}
	return t
}

func extractEducational(el *etree.Element) *scormpack.EducationalMetadata {
	if el == nil {
		return nil
	}
	return &scormpack.EducationalMetadata{
		InteractivityType:    vocabValue(firstChildAny(el, "interactivitytype", "interactivityType")),
		InteractivityLevel:   vocabValue(firstChildAny(el, "interactivitylevel", "interactivityLevel")),
		LearningResourceType: vocabValue(firstChildAny(el, "learningresourcetype", "learningResourceType")),
		Difficulty:           vocabValue(xmldoc.FirstChild(el, "difficulty")),
		TypicalLearningTime:  dateText(firstChildAny(el, "typicallearningtime", "typicalLearningTime")),
		Language:             lomText(xmldoc.FirstChild(el, "language")),
	}
}

// firstChildAny tries several local names in order, to bridge the 1.2
// and 2004 binding spellings.
func firstChildAny(el *etree.Element, names ...string) *etree.Element {
	for _, name := range names {
		if child := xmldoc.FirstChild(el, name); child != nil {
			return child
		}
	}
	return nil
}

// lomText resolves an element's human-readable text, looking through the
// <langstring> (1.2) and <string> (2004) wrappers when present.
func lomText(el *etree.Element) string {
	if el == nil {
		return ""
	}
	if ls := firstChildAny(el, "langstring", "string"); ls != nil {
		return xmldoc.Text(ls)
	}
	return xmldoc.Text(el)
}

// vocabValue resolves a LOM vocabulary element to its <value> text.
func vocabValue(el *etree.Element) string {
	if el == nil {
		return ""
	}
	if v := xmldoc.FirstChild(el, "value"); v != nil {
		return lomText(v)
	}
	return lomText(el)
}

// identifierText handles both the plain <identifier> form and the
// <identifier><entry> / <catalogentry><entry> forms.
func identifierText(general *etree.Element) string {
	id := firstChildAny(general, "identifier", "catalogentry", "catalogEntry")
	if id == nil {
		return ""
	}
	if entry := xmldoc.FirstChild(id, "entry"); entry != nil {
		return lomText(entry)
	}
	return lomText(id)
}

// entityText reads a contributor's entity, which the 1.2 binding nests
// as <centity><vcard> and the 2004 binding writes as a plain <entity>.
func entityText(contribute *etree.Element) string {
	if centity := xmldoc.FirstChild(contribute, "centity"); centity != nil {
		return xmldoc.ChildText(centity, "vcard")
	}
	return xmldoc.ChildText(contribute, "entity")
}

// dateText handles the <date>/<duration> shape whose payload sits in a
// <datetime> or <duration> child in the 1.2 binding.
func dateText(el *etree.Element) string {
	if el == nil {
		return ""
	}
	if dt := firstChildAny(el, "datetime", "dateTime", "duration"); dt != nil {
		return lomText(dt)
	}
	return lomText(el)
}
