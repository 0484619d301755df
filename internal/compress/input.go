package compress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// inspectInput confirms the input is an existing, readable regular file and
// returns its size.
func inspectInput(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, wrap(ErrMissingInput, "inspect input", fmt.Sprintf("%s does not exist", path), nil)
		}
		return 0, wrap(ErrMissingInput, "inspect input", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, wrap(ErrMissingInput, "inspect input", fmt.Sprintf("%s is not a regular file", path), nil)
	}
	if err := checkReadable(path); err != nil {
		return 0, wrap(ErrMissingInput, "inspect input", fmt.Sprintf("%s is not readable", path), err)
	}
	return info.Size(), nil
}
