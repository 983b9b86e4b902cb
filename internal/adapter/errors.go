package adapter

import "errors"

// ErrRemoteUnavailable indicates a network or service failure talking to the
// recommendation service: connection errors, timeouts, and non-2xx
// responses. Sync phases abort on it and retry on the next schedule; the
// feedback path reports it to the caller without rolling back the local
// write already applied.
var ErrRemoteUnavailable = errors.New("recommendation service unavailable")
