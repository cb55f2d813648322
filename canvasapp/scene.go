package canvasapp

import (
	"image"

	"canvashost/canvasapp/ui"
)

const (
	alphabetLine = "ABCDEFGHIJKLMNOPQRSTUVWXYZ 0123456789 !@#$%^&*()[]{}\\|;':\",./<>?-=_+`~"
	pangramLine  = "THE QUICK, BROWN FOX JUMPS OVER THE LAZY DOG."
)

// Scene is what the app draws on every rendered frame, back to front.
type Scene struct {
	Elements []ui.Element
	Handlers []ui.GestureHandler
}

// DefaultScene is the title, the font test lines, a marker square and a
// button. onTap runs when the button is tapped.
func DefaultScene(onTap func(b *ui.Button)) Scene {
	return Scene{
		Elements: []ui.Element{
			ui.HCenter{At: image.Pt(0, 10), Child: ui.Text{Label: "KEVIN P. THORNE", Scale: 4, Color: ui.White}},
			ui.Positioned{At: image.Pt(0, 100), Child: ui.Text{Label: alphabetLine, Scale: 1, Color: ui.Green}},
			ui.Positioned{At: image.Pt(0, 110), Child: ui.Text{Label: alphabetLine, Scale: 2, Color: ui.Red}},
			ui.Positioned{At: image.Pt(0, 125), Child: ui.Text{Label: alphabetLine, Scale: 3, Color: ui.Blue}},
			ui.Positioned{At: image.Pt(0, 145), Child: ui.Text{Label: alphabetLine, Scale: 4, Color: ui.Green}},
			ui.Positioned{At: image.Pt(0, 170), Child: ui.Text{Label: pangramLine, Scale: 3, Color: ui.Green}},
			ui.Positioned{At: image.Pt(10, 220), Child: ui.Rectangle{W: 10, H: 10, Color: ui.White}},
		},
		Handlers: []ui.GestureHandler{
			&ui.Button{
				At:               image.Pt(10, 190),
				Label:            "BOOP",
				Scale:            3,
				Color:            ui.Gray,
				TextColor:        ui.White,
				PressedColor:     ui.White,
				PressedTextColor: ui.Gray,
				OnTap:            onTap,
			},
		},
	}
}
