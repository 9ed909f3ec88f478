package data

import (
	"github.com/pkg/errors"
)

var (
	//Raised (as a panic) when an attribute index or storage position is outside the store
	ErrIndexOutOfRange = errors.New("index out of range")
	//Raised when a representation does not provide the requested feature
	ErrUnsupported = errors.New("not supported")
	//Raised (as a panic) when a header-dependent call is made on an instance without header
	ErrNoHeader = errors.New("instance has no header")
)

func checkIndex(idx, length int, what string) {
	if idx < 0 || idx >= length {
		panic(errors.Wrapf(ErrIndexOutOfRange, "%s %d, length %d", what, idx, length))
	}
}
