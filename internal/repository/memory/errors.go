package memory

import "errors"

var errRepositoryClosed = errors.New("repository is closed")
