package ui

import "context"

// Screen is the top-level view. Exactly one is active.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenDashboard
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Section is the dashboard sub-view, meaningful only while the dashboard
// screen is active.
type Section int

const (
	SectionHome Section = iota
	SectionStatement
	SectionPixTransfer
	SectionPixKeys
)

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionStatement:
		return "statement"
	case SectionPixTransfer:
		return "pix-transfer"
	case SectionPixKeys:
		return "pix-keys"
	default:
		return "unknown"
	}
}

var screenFields = map[Screen]Field{
	ScreenLogin:     FieldScreenLogin,
	ScreenRegister:  FieldScreenRegister,
	ScreenDashboard: FieldScreenDashboard,
}

var sectionFields = map[Section]Field{
	SectionHome:        FieldSectionHome,
	SectionStatement:   FieldSectionStatement,
	SectionPixTransfer: FieldSectionPixTransfer,
	SectionPixKeys:     FieldSectionPixKeys,
}

// Navigator is the finite-state view selector. Switching screens never
// touches the network; entering a section runs its registered loader once
// per entry.
type Navigator struct {
	r       Renderer
	screen  Screen
	section Section
	loaders map[Section]func(context.Context)
}

func NewNavigator(r Renderer) *Navigator {
	return &Navigator{
		r:       r,
		screen:  ScreenLogin,
		section: SectionHome,
		loaders: make(map[Section]func(context.Context)),
	}
}

// OnSectionEnter registers the data-loading hook fired when sec becomes
// active. Sections without a hook (PixTransfer) load nothing.
func (n *Navigator) OnSectionEnter(sec Section, fn func(context.Context)) {
	n.loaders[sec] = fn
}

func (n *Navigator) Screen() Screen   { return n.screen }
func (n *Navigator) Section() Section { return n.section }

// ShowScreen activates s and hides the other screens.
func (n *Navigator) ShowScreen(s Screen) {
	n.screen = s
	for screen, field := range screenFields {
		n.r.SetVisible(field, screen == s)
	}
}

// ShowSection activates sec, hides the other sections, then triggers the
// section's loader, if any.
func (n *Navigator) ShowSection(ctx context.Context, sec Section) {
	n.section = sec
	for section, field := range sectionFields {
		n.r.SetVisible(field, section == sec)
	}
	if fn, ok := n.loaders[sec]; ok {
		fn(ctx)
	}
}
