package utils

import "github.com/unihall/hall-allotment/internal/model"

// HallImage resolves the display image for a hall with a fixed
// precedence: explicit local override, then the short-code
// convention path under /halls, then the remote URL, then the
// generic fallback.  Pure function, no I/O.
func HallImage(h *model.Hall) string {
	if h == nil {
		return ""
	}
	if h.LocalImage != "" {
		return h.LocalImage
	}
	if h.ShortCode != "" {
		return "/halls/" + h.ShortCode + ".jpg"
	}
	if h.ImageURL != "" {
		return h.ImageURL
	}
	return h.FallbackImage
}
