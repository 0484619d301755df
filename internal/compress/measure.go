package compress

import "os"

// measureSize opens the artifact and stats the handle, so a file that
// vanished between encode and measurement is reported rather than sized 0.
func measureSize(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
