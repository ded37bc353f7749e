package model

// StagedFile is an uploaded payload parked in the temporary upload
// directory. It is never persisted: it is either promoted into an order's
// attachment directory or swept away.
type StagedFile struct {
	OriginalName string
	TempPath     string
	Size         int64
}
