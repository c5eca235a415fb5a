package resmanblob

import (
	"path"

	"github.com/frantjc/resman/internal/resmanregexp"
	"github.com/opencontainers/go-digest"
)

// ReportKey is the key that a report in the given format is stored
// under. Reports are grouped by package name, or by the descriptor's
// hash when there is no usable package name.
func ReportKey(packageName string, hash digest.Digest, ext string) string {
	prefix := packageName
	if !resmanregexp.IsPackageName(prefix) {
		prefix = path.Join(hash.Algorithm().String(), hash.Encoded())
	}

	return path.Join(prefix, "report."+ext)
}
