package jinja2

import (
	"io"

	pongo2 "github.com/flosch/pongo2/v5"
)

// Context is the set of variables a template can reference.
type Context = pongo2.Context

type Environment struct {
	templateSet *pongo2.TemplateSet
}

type Template struct {
	source string
	engine *pongo2.Template
}

func NewEnvironment() *Environment {
	return &Environment{templateSet: pongo2.NewSet("linspace", pongo2.DefaultLoader)}
}

func (r *Environment) From_string(tpl string) (*Template, error) {
	t, err := r.templateSet.FromString(tpl)
	if err != nil {
		return nil, err
	}
	return &Template{source: tpl, engine: t}, nil
}

func (t *Template) Source() string {
	return t.source
}

func (t *Template) Render(ctx Context) (string, error) {
	return t.engine.Execute(ctx)
}

// RenderTo writes the rendered template to w. Nothing is written if
// rendering fails.
func (t *Template) RenderTo(w io.Writer, ctx Context) error {
	return t.engine.ExecuteWriter(ctx, w)
}
