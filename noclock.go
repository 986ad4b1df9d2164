//go:build shortid_noclock

package shortid

import "github.com/eduardolat/shortid/internal/clock"

var defaultClock Clock = clock.Unavailable{}
