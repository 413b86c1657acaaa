package ports

import "github.com/go-faster/errors"

// ErrCancelled is returned by a RolePrompter when the user skips the entry.
var ErrCancelled = errors.New("cancelled by user")
