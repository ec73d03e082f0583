package component

import (
	"path/filepath"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// IsMounted reports whether path is the root of a filesystem distinct from
// its parent directory's. An empty directory on the parent filesystem has the
// same identity as its parent and is reported as not mounted.
func IsMounted(fs StatFS, path string) (bool, error) {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return false, errors.Messagef("could not determine parent of mount path %q", path)
	}

	parentStat, err := fs.Statfs(parent)
	if err != nil {
		return false, errors.WrapWithCode(err, errors.ErrIO,
			"could not query filesystem of "+parent, "")
	}
	stat, err := fs.Statfs(clean)
	if err != nil {
		return false, errors.WrapWithCode(err, errors.ErrIO,
			"could not query filesystem of "+clean, "")
	}

	return stat.ID != parentStat.ID, nil
}
