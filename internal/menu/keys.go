package menu

// Key identifies a keyboard event handled by the controller. The values match
// the identifiers delivered by the host event loop; anything else is ignored.
type Key string

const (
	KeyEnter     Key = "Enter"
	KeySpace     Key = " "
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
	KeyEscape    Key = "Escape"
	KeyTab       Key = "Tab"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
)
