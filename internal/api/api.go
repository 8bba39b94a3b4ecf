// Package api handle requests to json api endpoints.
package api

//
// api.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"github.com/go-chi/chi/v5"
	"github.com/samber/do/v2"
)

// API is handler for all api endpoints.
type API struct {
	router *chi.Mux
}

func New(i do.Injector) (API, error) {
	dashboardResource := do.MustInvoke[dashboardResource](i)
	subscriptionsResource := do.MustInvoke[subscriptionsResource](i)

	router := chi.NewRouter()
	router.Mount("/", dashboardResource.Routes())
	router.Mount("/subscriptions", subscriptionsResource.Routes())

	return API{router}, nil
}

func (a *API) Routes() *chi.Mux {
	return a.router
}
