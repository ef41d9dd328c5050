package intervalmap

import "errors"

var (
	ErrEmptyInterval   = errors.New("empty interval")
	ErrUnsorted        = errors.New("entries not sorted")
	ErrOverlap         = errors.New("entries overlap")
	ErrIndexOutOfRange = errors.New("index out of range")
)
