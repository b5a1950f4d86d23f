package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders a decorative lucide icon through iconify, e.g. Icon("arrow-right", 16).
// Every icon on the page sits next to its text label, so it is hidden from
// assistive technology.
func Icon(name string, size int) g.Node {
	return Span(
		Class("iconify inline-block"),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("data-width", fmt.Sprint(size)),
		g.Attr("data-height", fmt.Sprint(size)),
		g.Attr("aria-hidden", "true"),
	)
}

const (
	inputClass     = "mt-1 w-full rounded-xl border border-neutral-300 dark:border-neutral-700 bg-transparent px-3 py-2"
	primaryButton  = "inline-flex items-center gap-2 px-8 py-4 rounded-full bg-black text-white dark:bg-white dark:text-black text-lg font-semibold hover:opacity-90"
	secondaryLink  = "inline-flex items-center gap-2 px-8 py-4 rounded-full border border-neutral-300 dark:border-neutral-700 text-lg font-semibold hover:bg-neutral-100 dark:hover:bg-neutral-900"
	sectionClass   = "mx-auto max-w-6xl px-4 py-24 border-t border-neutral-200 dark:border-neutral-800"
	formCardClass  = "rounded-3xl border border-neutral-200 dark:border-neutral-800 p-6"
	mutedTextClass = "text-neutral-700 dark:text-neutral-300"
)

type field struct {
	form        string
	name        string
	label       string
	placeholder string
	inputType   string
	required    bool
	multiline   bool
}

// formField ids are prefixed with the form name since both forms share
// field names.
func formField(f field) g.Node {
	id := f.form + "-" + f.name
	control := []g.Node{
		Name(f.name),
		ID(id),
		Class(inputClass),
		Placeholder(f.placeholder),
		g.If(f.required, Required()),
	}

	var input g.Node
	if f.multiline {
		input = Textarea(append(control, g.Attr("rows", "4"))...)
	} else {
		inputType := f.inputType
		if inputType == "" {
			inputType = "text"
		}
		input = Input(append(control, Type(inputType))...)
	}

	return Div(
		Label(g.Attr("for", id), Class("text-sm"), g.Text(f.label)),
		input,
	)
}
