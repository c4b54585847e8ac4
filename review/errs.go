package review

import "errors"

var ErrSelector = errors.New("selector error")
