package simulate

import (
	"github.com/pkg/errors"
)

var (
	ErrRegionSizeZero = errors.New("region size is zero")
	ErrStepsZero      = errors.New("step count is zero")
	ErrFrameSizeZero  = errors.New("max frame size is zero")
	ErrFrameTooLarge  = errors.New("max frame size exceeds region size")
	ErrNotInitialized = errors.New("session is not initialized")
)
