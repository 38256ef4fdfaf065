package sequencing

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/openelearn/scormpack/internal/xmldoc"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

// Validate checks every sequencing subtree in manifestText. A manifest
// without sequencing yields Valid=true with no errors or warnings.
// Unparsable XML becomes a single error in the result.
func Validate(manifestText string) scormpack.SequencingResult {
	result := scormpack.SequencingResult{Valid: true, Errors: []string{}, Warnings: []string{}}

	root, err := xmldoc.Parse(manifestText)
	if err != nil {
		result.AddError("manifest is not well-formed XML: %v", err)
		return result
	}

	for _, info := range Collect(root) {
		check(info, &result)
	}
	return result
}

// Collect gathers every <sequencing> subtree in the document into typed
// records, tagged with the identifier of the organization or item that
// declared it.
func Collect(root *etree.Element) []scormpack.SequencingInfo {
	var infos []scormpack.SequencingInfo
	for _, seq := range xmldoc.FindAll(root, "sequencing") {
		info := scormpack.SequencingInfo{}
		if parent := seq.Parent(); parent != nil {
			info.Owner = xmldoc.Attr(parent, "identifier")
		}

		if cm := xmldoc.FirstChild(seq, "controlMode"); cm != nil {
			info.ControlMode = &scormpack.ControlMode{
				Choice:      xmldoc.Attr(cm, "choice") == "true",
				Flow:        xmldoc.Attr(cm, "flow") == "true",
				ForwardOnly: xmldoc.Attr(cm, "forwardOnly") == "true",
			}
		}

		for _, rule := range xmldoc.FindAll(seq, "sequencingRule") {
			r := scormpack.SequencingRule{Action: ruleAction(rule)}
			for _, cond := range xmldoc.FindAll(rule, "ruleCondition") {
				r.Conditions = append(r.Conditions, xmldoc.Attr(cond, "condition"))
			}
			info.Rules = append(info.Rules, r)
		}

		if lc := xmldoc.FirstChild(seq, "limitConditions"); lc != nil {
			limits := &scormpack.LimitConditions{
				AttemptAbsoluteDurationLimit: xmldoc.Attr(lc, "attemptAbsoluteDurationLimit"),
			}
			if raw := xmldoc.Attr(lc, "attemptLimit"); raw != "" {
				if n, err := strconv.Atoi(raw); err == nil {
					limits.AttemptLimit = &n
				}
			}
			info.Limits = limits
		}

		infos = append(infos, info)
	}
	return infos
}

// ruleAction reads the rule's action, accepting both the attribute form
// and the nested <ruleAction action="..."/> form seen in conforming
// 2004 manifests.
func ruleAction(rule *etree.Element) string {
	if action := xmldoc.Attr(rule, "action"); action != "" {
		return action
	}
	return xmldoc.Attr(xmldoc.FirstChild(rule, "ruleAction"), "action")
}

func check(info scormpack.SequencingInfo, result *scormpack.SequencingResult) {
	where := info.Owner
	if where == "" {
		where = "(anonymous)"
	}

	if cm := info.ControlMode; cm != nil {
		if cm.Choice && !cm.Flow {
			result.AddWarning("sequencing of %s enables choice without flow; navigation may become unreachable", where)
		}
	}

	for i, rule := range info.Rules {
		if rule.Action == "" {
			result.AddError("sequencing rule #%d of %s has no action", i+1, where)
		}
		if len(rule.Conditions) == 0 {
			result.AddWarning("sequencing rule #%d of %s has no conditions and may misbehave", i+1, where)
		}
	}

	if info.Limits != nil && info.Limits.AttemptLimit != nil && *info.Limits.AttemptLimit <= 0 {
		result.AddError("sequencing of %s declares non-positive attemptLimit %d", where, *info.Limits.AttemptLimit)
	}
}
