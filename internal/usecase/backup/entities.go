package backup

// SweepResult reports what a retention sweep did, for logging and the CLI.
type SweepResult struct {
	Trashed    int   `json:"trashed"`
	Deleted    int   `json:"deleted"`
	BytesFreed int64 `json:"bytes_freed"`
}
