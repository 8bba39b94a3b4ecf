package templates

//
// helpers.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"io"

	"github.com/samber/do/v2"
)

// Flash is one-time message shown on the next page.
type Flash struct {
	Message string
	Error   string
	Warning string
}

func (f *Flash) Empty() bool {
	return f == nil || (f.Message == "" && f.Error == "" && f.Warning == "")
}

type PageContext struct {
	Webroot string
	Flash   *Flash
}

type Renderer struct {
	webroot string
}

func NewRenderer(i do.Injector) (*Renderer, error) {
	return &Renderer{
		webroot: do.MustInvokeNamed[string](i, "server.webroot"),
	}, nil
}

func (r *Renderer) WritePage(w io.Writer, p Page, flash *Flash) {
	WritePageTemplate(w, p, &PageContext{Webroot: r.webroot, Flash: flash})
}

// Webroot return path prefix of the pages.
func (r *Renderer) Webroot() string {
	return r.webroot
}
