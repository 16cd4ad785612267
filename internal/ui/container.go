package ui

// ContainerProps configures a Container.
type ContainerProps struct {
	ID             string
	Class          string
	Style          Style
	OnClick        Action
	OnPointerEnter Action
	OnPointerLeave Action
}

// baseStyle is the centered flex box every Container starts from.
var baseStyle = Style{
	"font-family":     "Mansalva",
	"position":        "relative",
	"display":         "flex",
	"justify-content": "center",
	"align-items":     "center",
	"height":          "100%",
	"width":           "100%",
}

// BaseStyle returns a copy of the Container base style.
func BaseStyle() Style {
	return baseStyle.Merge(nil)
}

// Container renders a centered flexible box around children. Caller style
// overrides the base style key by key; handlers are passed through as-is.
func Container(props ContainerProps, children ...Node) Node {
	return Node{
		Tag:   "div",
		ID:    props.ID,
		Class: props.Class,
		Style: baseStyle.Merge(props.Style),
		On: Handlers{
			Click:        props.OnClick,
			PointerEnter: props.OnPointerEnter,
			PointerLeave: props.OnPointerLeave,
		},
		Children: children,
	}
}
