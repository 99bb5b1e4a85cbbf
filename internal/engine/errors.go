package engine

import (
	"fmt"

	"github.com/sirkon/fieldguard/internal/locate"
)

// MalformedSiteError is returned when an assignment site does not belong to
// the unit being evaluated.
type MalformedSiteError struct {
	Site   locate.Site
	Reason string
}

func (e *MalformedSiteError) Error() string {
	return fmt.Sprintf("malformed assignment site %s: %s", e.Site.Span, e.Reason)
}
