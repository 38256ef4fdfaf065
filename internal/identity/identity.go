// Package identity derives stable course identities from manifests.
//
// A package may be ingested many times; the course it belongs to should
// keep one identity across re-uploads. CourseID derives a deterministic
// UUID v5 from the manifest's identifier attribute, so the same course
// always maps to the same UUID while distinct courses cannot collide
// within the namespace.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// namespaceCourse is the fixed UUID v5 namespace for course identities,
// derived from the canonical string "openelearn.org/scormpack/course/v1"
// under the standard URL namespace. Computed once at package load.
var namespaceCourse = uuid.NewSHA1(uuid.NameSpaceURL, []byte("openelearn.org/scormpack/course/v1"))

// CourseID returns the deterministic UUID v5 for a manifest identifier.
// The identifier is normalized (lowercased, trimmed) first, so cosmetic
// differences between exports of the same course do not fork identity.
// An empty identifier still yields a stable, valid UUID; the manifest
// validator reports the missing attribute separately.
func CourseID(manifestIdentifier string) uuid.UUID {
	normalized := strings.ToLower(strings.TrimSpace(manifestIdentifier))
	return uuid.NewSHA1(namespaceCourse, []byte(normalized))
}
