package model

import "time"

// FileInfo describes an audio file staged on local disk for one request
type FileInfo struct {
	FullPath string
	Name     string // name the client uploaded the file under
	Size     int64
	Hash     string
	ModTime  time.Time
}
