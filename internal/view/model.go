package view

//
// model.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

// Model is everything needed to render dashboard.
type Model struct {
	Registry      RegistryView      `json:"registry"`
	Options       []Option          `json:"options"`
	Selected      *SelectedView     `json:"selected,omitempty"`
	Feed          *FeedView         `json:"feed,omitempty"`
	AddForm       FormState         `json:"add_form"`
	Subscriptions []SubscriptionRow `json:"subscriptions"`
	// Pending is true when any background work is in progress and view should be refreshed.
	Pending bool `json:"pending"`
}

type RegistryView struct {
	Loading  bool   `json:"loading"`
	Error    string `json:"error,omitempty"`
	Empty    bool   `json:"empty"`
	LoadedAt string `json:"loaded_at,omitempty"`
}

// Option is one entry of subscription selector.
type Option struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type SelectedView struct {
	ID string `json:"id"`
	// Known is false when selected subscription is not (yet) in registry.
	Known         bool   `json:"known"`
	SourceKey     string `json:"source_key,omitempty"`
	Title         string `json:"title,omitempty"`
	Kind          string `json:"kind,omitempty"`
	Link          string `json:"link,omitempty"`
	VideoCount    int    `json:"video_count"`
	NewVideoCount int    `json:"new_video_count"`
	FetchInterval string `json:"fetch_interval,omitempty"`
	LastUpdated   string `json:"last_updated,omitempty"`
	LastFetched   string `json:"last_fetched,omitempty"`
	LastViewed    string `json:"last_viewed,omitempty"`
}

type FeedView struct {
	Loading bool        `json:"loading"`
	Error   string      `json:"error,omitempty"`
	Empty   bool        `json:"empty"`
	Videos  []VideoView `json:"videos"`
}

type VideoView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	AuthorURL    string `json:"author_url,omitempty"`
	Link         string `json:"link"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Summary      string `json:"summary,omitempty"`
	LongSummary  bool   `json:"long_summary"`
	Published    string `json:"published"`
	PublishedAgo string `json:"published_ago"`
	Updated      string `json:"updated,omitempty"`
	Duration     string `json:"duration"`
	New          bool   `json:"new"`
}

// FormState is state of the form that submit mutation.
type FormState struct {
	Submitting bool   `json:"submitting"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
	// Warning is set when change was saved but list was not refreshed.
	Warning string `json:"warning,omitempty"`
}

// SubscriptionRow is entry of subscriptions management list.
type SubscriptionRow struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Kind          string    `json:"kind"`
	Interval      string    `json:"interval"`
	IntervalSec   int       `json:"interval_sec"`
	Editing       bool      `json:"editing"`
	Update        FormState `json:"update"`
	Delete        FormState `json:"delete"`
	VideoCount    int       `json:"video_count"`
	NewVideoCount int       `json:"new_video_count"`
}
