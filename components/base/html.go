// Package base holds the design-system primitives shared by every portal section.
package base

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// Attrs are rendered in key order so markup is stable between renders.
type Attrs map[string]string

// With returns a copy of a with k set to v. Empty values drop the key.
func (a Attrs) With(k, v string) Attrs {
	out := make(Attrs, len(a)+1)
	for key, val := range a {
		out[key] = val
	}
	if v == "" {
		delete(out, k)
		return out
	}
	out[k] = v
	return out
}

// Merge layers other on top of a. The class attribute is merged, not replaced.
func (a Attrs) Merge(other Attrs) Attrs {
	out := make(Attrs, len(a)+len(other))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range other {
		if k == "class" {
			out[k] = Cn(out[k], v)
			continue
		}
		out[k] = v
	}
	return out
}

func writeAttrs(w io.Writer, attrs Attrs) error {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, k, templ.EscapeString(attrs[k])); err != nil {
			return err
		}
	}
	return nil
}

// El renders <tag attrs>children</tag>. Nil children are skipped.
func El(tag string, attrs Attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := writeAttrs(w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Void renders an element without a closing tag, like img or input.
func Void(tag string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := writeAttrs(w, attrs); err != nil {
			return err
		}
		_, err := io.WriteString(w, "/>")
		return err
	})
}

// Text renders s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func Textf(format string, args ...any) templ.Component {
	return Text(fmt.Sprintf(format, args...))
}

// Group renders children one after another without a wrapper.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

// When returns c if cond holds, nil otherwise. Nil components render nothing.
func When(cond bool, c templ.Component) templ.Component {
	if cond {
		return c
	}
	return nil
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
