package stage

import "errors"

var ErrStage = errors.New("staging failed")
