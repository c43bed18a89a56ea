package ir

import "errors"

var ErrBadSpec = errors.New("bad mapping specification")
