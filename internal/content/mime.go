package content

import (
	"path"
	"strings"
)

// DefaultMimeType is assigned to files whose extension is not in the
// static table.
const DefaultMimeType = "application/octet-stream"

// mimeTypes is the static extension table covering the file types SCORM
// packages commonly carry. It is initialized once and never mutated, so
// concurrent packaging calls may read it freely.
var mimeTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "application/javascript",
	".json":  "application/json",
	".xml":   "application/xml",
	".xsd":   "application/xml",
	".dtd":   "application/xml-dtd",
	".txt":   "text/plain",
	".csv":   "text/csv",
	".pdf":   "application/pdf",
	".gif":   "image/gif",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".png":   "image/png",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".bmp":   "image/bmp",
	".webp":  "image/webp",
	".mp3":   "audio/mpeg",
	".wav":   "audio/wav",
	".ogg":   "audio/ogg",
	".m4a":   "audio/mp4",
	".mp4":   "video/mp4",
	".m4v":   "video/mp4",
	".webm":  "video/webm",
	".mov":   "video/quicktime",
	".swf":   "application/x-shockwave-flash",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".eot":   "application/vnd.ms-fontobject",
	".zip":   "application/zip",
}

// MimeType infers the MIME type of an archive entry from its extension.
// Unknown extensions map to DefaultMimeType.
func MimeType(href string) string {
	ext := strings.ToLower(path.Ext(href))
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return DefaultMimeType
}
