package manifest

import (
	"github.com/beevik/etree"

	"github.com/openelearn/scormpack/internal/xmldoc"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

// Validate checks manifestText against the structural rules of a SCORM
// manifest. It never fails for data-quality defects; every defect found
// is one entry in the returned result. Unparsable XML becomes a single
// error in the result rather than a returned error.
func Validate(manifestText string) scormpack.ValidationResult {
	result := scormpack.ValidationResult{Valid: true, Errors: []string{}}

	root, err := xmldoc.Parse(manifestText)
	if err != nil {
		result.AddError("manifest is not well-formed XML: %v", err)
		return result
	}

	if root.Tag != "manifest" {
		// Nothing below can be checked against a foreign document.
		result.AddError("root element must be <manifest>, found <%s>", root.Tag)
		return result
	}

	validateRootAttributes(root, &result)
	validateOrganizations(root, &result)
	validateResources(root, &result)
	validateItemReferences(root, &result)

	return result
}

func validateRootAttributes(root *etree.Element, result *scormpack.ValidationResult) {
	if xmldoc.Attr(root, "identifier") == "" {
		result.AddError("manifest element is missing required identifier attribute")
	}
	if xmldoc.Attr(root, "version") == "" {
		result.AddError("manifest element is missing required version attribute")
	}
}

func validateOrganizations(root *etree.Element, result *scormpack.ValidationResult) {
	organizations := xmldoc.FirstChild(root, "organizations")
	if organizations == nil {
		result.AddError("manifest is missing required organizations element")
		return
	}

	def := xmldoc.Attr(organizations, "default")
	if def == "" {
		result.AddError("organizations element is missing required default attribute")
		return
	}

	for _, org := range xmldoc.Children(organizations, "organization") {
		if xmldoc.Attr(org, "identifier") == def {
			return
		}
	}
	result.AddError("default organization %q not found among declared organizations", def)
}

func validateResources(root *etree.Element, result *scormpack.ValidationResult) {
	resources := xmldoc.FirstChild(root, "resources")
	if resources == nil {
		result.AddError("manifest is missing required resources element")
		return
	}

	for i, res := range xmldoc.Children(resources, "resource") {
		identifier := xmldoc.Attr(res, "identifier")
		if identifier == "" {
			result.AddError("resource #%d is missing required identifier attribute", i+1)
			identifier = "?"
		}
		resType := xmldoc.Attr(res, "type")
		if resType == "" {
			result.AddError("resource %q is missing required type attribute", identifier)
		}
		if resType == "webcontent" && xmldoc.Attr(res, "href") == "" {
			result.AddError("webcontent resource %q is missing required href attribute", identifier)
		}
	}
}

// validateItemReferences checks that every non-empty item identifierref
// resolves to a declared resource. Resource identifiers are collected
// from the whole document, not just under <resources>, to tolerate
// nested or duplicated declarations seen in the wild.
func validateItemReferences(root *etree.Element, result *scormpack.ValidationResult) {
	declared := make(map[string]struct{})
	for _, res := range xmldoc.FindAll(root, "resource") {
		if id := xmldoc.Attr(res, "identifier"); id != "" {
			declared[id] = struct{}{}
		}
	}

	for _, item := range xmldoc.FindAll(root, "item") {
		ref := xmldoc.Attr(item, "identifierref")
		if ref == "" {
			continue
		}
		if _, ok := declared[ref]; !ok {
			result.AddError("item %q references undeclared resource %q",
				xmldoc.Attr(item, "identifier"), ref)
		}
	}
}
