package backup

import "errors"

var (
	ErrNotFound   = errors.New("backup not found")
	ErrNotTrashed = errors.New("backup is not in the trash")
)
