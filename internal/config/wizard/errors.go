package wizard

import "errors"

// ErrPrompterClosed is returned when a question is asked after Close.
var ErrPrompterClosed = errors.New("prompter is closed")
