package platform

import (
	"github.com/BurntSushi/xgb/randr"

	"github.com/example/goappbar/internal/appbar"
)

// crtcBounds converts a RandR CRTC into the root-relative rectangle it scans
// out. Disabled CRTCs have no size and report false.
func crtcBounds(info *randr.GetCrtcInfoReply) (appbar.Rect, bool) {
	if info == nil || info.Width == 0 || info.Height == 0 {
		return appbar.Rect{}, false
	}
	return appbar.Rect{
		Left:   int32(info.X),
		Top:    int32(info.Y),
		Right:  int32(info.X) + int32(info.Width),
		Bottom: int32(info.Y) + int32(info.Height),
	}, true
}
