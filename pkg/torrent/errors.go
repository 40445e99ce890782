package torrent

import (
	"errors"
	"fmt"
)

// Metainfo error kinds. A *MetainfoError carries exactly one of them.
var (
	ErrBadFormat                  = errors.New("bad bencode format")
	ErrFileWasntDictionary        = errors.New("file wasn't a dictionary")
	ErrFileWithoutAnnounce        = errors.New("file without announce")
	ErrFileWithoutInfo            = errors.New("file without info")
	ErrAnnounceWasntString        = errors.New("announce wasn't a string")
	ErrBadlyFormattedAnnounceList = errors.New("badly formatted announce-list")
	ErrBadlyFormattedCreationDate = errors.New("badly formatted creation date")
	ErrCreationDateOutOfRange     = errors.New("creation date out of range")
	ErrBadlyFormattedComment      = errors.New("badly formatted comment")
	ErrBadlyFormattedCreatedBy    = errors.New("badly formatted created by")
	ErrBadlyFormattedEncoding     = errors.New("badly formatted encoding")
	ErrInfoWasntDictionary        = errors.New("info wasn't a dictionary")
)

// MetainfoError names the field that failed and why. Both Kind and Err
// match with errors.Is.
type MetainfoError struct {
	Kind error
	Err  error
}

func newError(kind, err error) *MetainfoError {
	return &MetainfoError{Kind: kind, Err: err}
}

func (e *MetainfoError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("metainfo: %v", e.Kind)
	}
	return fmt.Sprintf("metainfo: %v: %v", e.Kind, e.Err)
}

func (e *MetainfoError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
