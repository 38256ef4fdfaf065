package tui

import (
	"fmt"
	"strings"

	"github.com/openelearn/scormpack/pkg/scormpack"
)

// RenderContent renders the extracted package structure as an indented
// tree: every organization with its item hierarchy, then every resource
// with its files. The same text backs both the plain inspect output and
// the interactive browser.
func RenderContent(cnt *scormpack.Content) string {
	var b strings.Builder

	for _, org := range cnt.Organizations {
		b.WriteString(TitleStyle.Render(orLabel(org.Title, org.Identifier)))
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  [%s]", org.Identifier)))
		b.WriteString("\n")
		renderItems(&b, org.Items, 1)
		b.WriteString("\n")
	}

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Resources (%d)", len(cnt.Resources))))
	b.WriteString("\n")
	for _, res := range cnt.Resources {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			LabelStyle.Render(res.Identifier),
			MutedStyle.Render(resourceSummary(res))))
		for _, f := range res.Files {
			b.WriteString(MutedStyle.Render(fmt.Sprintf("    %s (%s, %d bytes)", f.Href, f.MimeType, len(f.Content))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderItems(b *strings.Builder, items []scormpack.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		line := indent + orLabel(item.Title, item.Identifier)
		if item.ResourceID != "" {
			line += MutedStyle.Render(" -> " + item.ResourceID)
		}
		b.WriteString(line)
		b.WriteString("\n")
		renderItems(b, item.Children, depth+1)
	}
}

func resourceSummary(res scormpack.Resource) string {
	summary := res.Type
	if res.Href != "" {
		summary += ", " + res.Href
	}
	return fmt.Sprintf("(%s, %d files)", summary, len(res.Files))
}

func orLabel(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}
