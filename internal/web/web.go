package web

//
// web.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"github.com/go-chi/chi/v5"
	"github.com/samber/do/v2"
)

type WEB struct {
	router *chi.Mux
}

func New(i do.Injector) (WEB, error) {
	dashboardPages := do.MustInvoke[dashboardPages](i)

	router := chi.NewRouter()
	router.Mount("/", dashboardPages.Routes())

	return WEB{router: router}, nil
}

func (w *WEB) Routes() *chi.Mux {
	return w.router
}
