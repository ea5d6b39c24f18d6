// Package overlay decides which side of an anchor a floating element should
// be placed on. It works purely on measured rectangles handed in by the
// rendering layer; nothing in here queries layout itself.
package overlay

import "strings"

// Side is one of the four cardinal placement directions for an overlay.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "top"
	}
}

// ParseSide maps a config string onto a Side. Anything unrecognized becomes Top.
func ParseSide(value string) Side {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "right":
		return Right
	case "bottom":
		return Bottom
	case "left":
		return Left
	default:
		return Top
	}
}

// Rect is a measured rectangle in viewport coordinates. Values are used as
// given, no plausibility checks are performed on them.
type Rect struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Width  int
	Height int
}

// Viewport is the currently visible client area.
type Viewport struct {
	Width  int
	Height int
}

// ResolveSide returns the side of the anchor the overlay should render on.
//
// The preferred side is kept unless the overlay does not fit there while the
// opposite side has room, in which case it flips to the opposite side. There
// is no perpendicular fallback and no edge clamping; when neither side fits
// the preferred side is returned and the overlay is allowed to overflow.
//
// The function is pure, so callers re-invoke it on every open and on every
// viewport resize or scroll.
func ResolveSide(overlay Rect, anchor Rect, viewport Viewport, preferred Side) Side {
	fitsTop := anchor.Top >= overlay.Height
	fitsBottom := overlay.Height <= viewport.Height-anchor.Bottom
	fitsLeft := anchor.Left >= overlay.Width
	fitsRight := overlay.Width <= viewport.Width-anchor.Right

	switch preferred {
	case Top:
		if !fitsTop && fitsBottom {
			return Bottom
		}

		return Top
	case Bottom:
		if !fitsBottom && fitsTop {
			return Top
		}

		return Bottom
	case Left:
		if !fitsLeft && fitsRight {
			return Right
		}

		return Left
	case Right:
		if !fitsRight && fitsLeft {
			return Left
		}

		return Right
	default:
		return Top
	}
}

// Origin computes the overlay top-left corner for a resolved side, aligned to
// the near edge of the anchor. Like ResolveSide it never clamps, an overlay
// that does not fit simply overflows the viewport.
func Origin(overlay Rect, anchor Rect, side Side) (int, int) {
	switch side {
	case Bottom:
		return anchor.Left, anchor.Bottom
	case Left:
		return anchor.Left - overlay.Width, anchor.Top
	case Right:
		return anchor.Right, anchor.Top
	case Top:
		fallthrough
	default:
		return anchor.Left, anchor.Top - overlay.Height
	}
}
