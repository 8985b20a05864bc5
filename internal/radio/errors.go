package radio

import "errors"

// ErrPlaybackStart matches every *StartError.
var ErrPlaybackStart = errors.New("playback start failed")

// StartError reports that the audio source refused to start.
type StartError struct {
	Err error
}

func (e *StartError) Error() string {
	return ErrPlaybackStart.Error() + ": " + e.Err.Error()
}

func (e *StartError) Unwrap() error {
	return e.Err
}

func (e *StartError) Is(target error) bool {
	return target == ErrPlaybackStart
}
