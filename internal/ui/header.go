package ui

// DefaultHeaderHeight is used when a Header has no height set.
const DefaultHeaderHeight = "80px"

// Header is the site banner.
type Header struct {
	Text   string
	Height string
}

// View renders the banner sized for d.
func (h Header) View(d Device) Node {
	height := h.Height
	if height == "" {
		height = DefaultHeaderHeight
	}
	return Container(ContainerProps{
		Class: "header",
		Style: Style{
			"height":    height,
			"font-size": d.FontSize("28px", "48px"),
		},
	}, Text(h.Text))
}
