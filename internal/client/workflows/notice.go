// Package workflows implements the application use cases: authentication,
// dashboard and statement loading, PIX transfers and PIX key management.
// Each workflow talks to the API through the api.Client interface and to the
// terminal through the ui.Renderer capability, which keeps the package fully
// testable with fakes.
package workflows

import (
	"time"

	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
)

// notices shows transient inline messages and schedules their dismissal.
// Each flash replaces whatever the field held before; with ttl <= 0 the
// message stays until the next flash (tests run with ttl 0).
type notices struct {
	r   ui.Renderer
	ttl time.Duration
}

func newNotices(r ui.Renderer, ttl time.Duration) *notices {
	return &notices{r: r, ttl: ttl}
}

// flash sets the field's text, makes it visible and arms the auto-dismiss
// timer. The timer only hides the field; the text is overwritten by the
// next flash.
func (n *notices) flash(field ui.Field, msg string) {
	n.r.SetText(field, msg)
	n.r.SetVisible(field, true)
	if n.ttl > 0 {
		time.AfterFunc(n.ttl, func() {
			n.r.SetVisible(field, false)
		})
	}
}

// hide dismisses the field immediately.
func (n *notices) hide(field ui.Field) {
	n.r.SetVisible(field, false)
}
