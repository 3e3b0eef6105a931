package handler

import (
	"strings"

	"github.com/yumyai/af3plot/pkg/render"
)

// Result lists the images a tool wrote, in the order they were written.
type Result struct {
	Outputs []string
	message string
}

// Message is the one-line confirmation printed on success.
func (r *Result) Message() string {
	if r.message != "" {
		return r.message
	}
	return "Saved: " + strings.Join(r.Outputs, ", ")
}

func renderOptions(dpi float64) render.Options {
	return render.Options{DPI: dpi}
}
