package settings

import "errors"

var ErrUnknownParameter = errors.New("unknown configuration parameter")
