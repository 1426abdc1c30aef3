package prompt

import "errors"

// ErrAborted signals the user dismissed a prompt (e.g. Ctrl+C). Widgets
// treat it as a cancelled interaction, never as a failure.
var ErrAborted = errors.New("prompt: aborted")
