package firestore

import (
	"fmt"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

// RemoteError is returned unchanged from the failing call; nothing is retried
// and no partial change is applied locally.
type RemoteError struct {
	Op         string
	Collection domain.Collection
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RemoteError) Unwrap() []error { return []error{portfolio.ErrRemote, e.Err} }
