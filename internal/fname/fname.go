// Package fname decomposes neuroimaging filenames into directory, stem and
// extension, honoring the compound extensions common in the domain
// (a ".nii.gz" volume splits as one extension, not two).
package fname

import (
	"path/filepath"
	"strings"
)

// compoundExts are multi-part extensions treated as a single unit.
var compoundExts = []string{
	".nii.gz",
	".mgh.gz",
	".gii.gz",
	".tar.gz",
}

// Split decomposes path into directory, stem, and extension.
// The extension keeps its leading dot; the directory has no trailing
// separator. Compound extensions are kept whole:
//
//	Split("/data/atlas.nii.gz") = ("/data", "atlas", ".nii.gz")
//	Split("tracts.Bdouble")     = ("", "tracts", ".Bdouble")
func Split(path string) (dir, stem, ext string) {
	dir = filepath.Dir(path)
	if dir == "." && !strings.HasPrefix(path, "."+string(filepath.Separator)) {
		dir = ""
	}

	base := filepath.Base(path)

	for _, ce := range compoundExts {
		if strings.HasSuffix(base, ce) && len(base) > len(ce) {
			return dir, base[:len(base)-len(ce)], ce
		}
	}

	ext = filepath.Ext(base)

	return dir, base[:len(base)-len(ext)], ext
}

// Stem returns just the stem of path.
func Stem(path string) string {
	_, stem, _ := Split(path)
	return stem
}
