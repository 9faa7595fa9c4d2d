package store

import "errors"

var (
	ErrUpload  = errors.New("upload failed")
	ErrArchive = errors.New("archive failed")
)
