package renderer

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error so component
// bodies can be written without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *htmlWriter) element(tag, class, content string) {
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
	h.text(content)
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) link(href, class, content string) {
	h.raw("<a")
	h.attr("href", href)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
	h.text(content)
	h.raw("</a>")
}
