// Package backendtest provide in-memory implementation of the backend API for tests.
package backendtest

//
// fake.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

type Subscription struct {
	ID                 string `json:"_id"`
	Title              string `json:"title,omitempty"`
	LastFetch          string `json:"last_fetch,omitempty"`
	LastVideoUpdate    string `json:"last_video_update,omitempty"`
	LastViewed         string `json:"last_viewed,omitempty"`
	NewVids            int    `json:"new_vids"`
	TimeBetweenFetches int    `json:"time_between_fetches"`
	Videos             int    `json:"videos"`
}

type Video struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	AuthorChannel string   `json:"author_channel"`
	Link          string   `json:"link"`
	Thumbnail     string   `json:"thumbnail"`
	Summary       string   `json:"summary"`
	Published     string   `json:"published"`
	Updated       string   `json:"updated,omitempty"`
	Duration      *float64 `json:"duration"`
}

// Request is record of request received by fake backend.
type Request struct {
	Method string
	Path   string
	Form   map[string]string
}

// Backend is fake aggregator backend served by httptest.Server.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	subs     []Subscription
	videos   map[string][]Video
	failures map[string]int
	requests []Request
}

func New() *Backend {
	b := &Backend{
		videos:   make(map[string][]Video),
		failures: make(map[string]int),
	}

	router := chi.NewRouter()
	router.Use(b.record)
	router.Get("/subs-info", b.subsInfo)
	router.Get("/vid-from-link/{id}", b.videosFromLink)
	router.Post("/add-sub/", b.addSub)
	router.Post("/set-viewed/", b.setViewed)
	router.Post("/set-time-between-fetches/", b.setInterval)
	router.Delete("/delete-sub/{id}", b.deleteSub)

	b.Server = httptest.NewServer(router)

	return b
}

func (b *Backend) URL() string {
	return b.Server.URL
}

func (b *Backend) Close() {
	b.Server.Close()
}

// AddSubscription put subscription into backend state.
func (b *Backend) AddSubscription(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, sub)
}

// SetVideos set list of videos for subscription.
func (b *Backend) SetVideos(id string, videos ...Video) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.videos[id] = videos
}

// FailNext make next `count` requests to endpoint (e.g. "GET /subs-info") fail with 500.
func (b *Backend) FailNext(endpoint string, count int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures[endpoint] = count
}

// Subscriptions return copy of current backend state.
func (b *Backend) Subscriptions() []Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.subs)
}

// Requests return received requests, optionally filtered by path prefix.
func (b *Backend) Requests(prefix string) []Request {
	b.mu.Lock()
	defer b.mu.Unlock()

	var res []Request

	for _, r := range b.requests {
		if strings.HasPrefix(r.Path, prefix) {
			res = append(res, r)
		}
	}

	return res
}

//-------------------------------------------------------------

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		req := Request{Method: r.Method, Path: r.URL.Path, Form: make(map[string]string)}
		for k := range r.PostForm {
			req.Form[k] = r.PostForm.Get(k)
		}

		endpoint := r.Method + " " + routeName(r.URL.Path)

		b.mu.Lock()
		b.requests = append(b.requests, req)
		failcnt := b.failures[endpoint]

		if failcnt > 0 {
			b.failures[endpoint] = failcnt - 1
		}
		b.mu.Unlock()

		if failcnt > 0 {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal failure"})

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) subsInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, b.Subscriptions())
}

func (b *Backend) videosFromLink(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	videos := slices.Clone(b.videos[chi.URLParam(r, "id")])
	b.mu.Unlock()

	if videos == nil {
		videos = []Video{}
	}

	writeJSON(w, http.StatusOK, videos)
}

func (b *Backend) addSub(w http.ResponseWriter, r *http.Request) {
	link := r.PostForm.Get("url")

	interval, err := strconv.Atoi(r.PostForm.Get("time_between_fetches"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid time_between_fetches"})

		return
	}

	_, chid, ok := strings.Cut(link, "/channel/")
	if !ok || chid == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unsupported url: " + link})

		return
	}

	sub := Subscription{ID: "yt:channel:" + chid, Title: "Channel " + chid, TimeBetweenFetches: interval}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.find(sub.ID) >= 0 {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "Subscription already exists"})

		return
	}

	b.subs = append(b.subs, sub)
	writeJSON(w, http.StatusOK, sub)
}

func (b *Backend) setViewed(w http.ResponseWriter, r *http.Request) {
	id := r.PostForm.Get("_id")

	viewed, err := time.Parse("2006-01-02T15:04:05.999999-07:00", r.PostForm.Get("viewed_time"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid viewed_time"})

		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.find(id)
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Subscription " + id + " not found"})

		return
	}

	b.subs[idx].LastViewed = viewed.UTC().Format(time.RFC1123)
	b.subs[idx].NewVids = 0
	writeJSON(w, http.StatusOK, map[string]string{"_id": id})
}

func (b *Backend) setInterval(w http.ResponseWriter, r *http.Request) {
	id := r.PostForm.Get("_id")

	interval, err := strconv.Atoi(r.PostForm.Get("time_between_fetches"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid time_between_fetches"})

		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.find(id)
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Subscription " + id + " not found"})

		return
	}

	b.subs[idx].TimeBetweenFetches = interval
	writeJSON(w, http.StatusOK, map[string]any{"_id": id, "time_between_fetches": interval})
}

func (b *Backend) deleteSub(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.find(id)
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Subscription " + id + " not found"})

		return
	}

	b.subs = slices.Delete(b.subs, idx, idx+1)
	delete(b.videos, id)
	writeJSON(w, http.StatusOK, map[string]string{"_id": id})
}

// find return index of subscription; must be called with lock held.
func (b *Backend) find(id string) int {
	return slices.IndexFunc(b.subs, func(s Subscription) bool { return s.ID == id })
}

//-------------------------------------------------------------

func routeName(path string) string {
	for _, prefix := range []string{"/vid-from-link/", "/delete-sub/"} {
		if strings.HasPrefix(path, prefix) {
			return prefix
		}
	}

	return path
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Duration return pointer to video duration.
func Duration(seconds float64) *float64 {
	return &seconds
}
