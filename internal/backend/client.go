// Package backend implement client for the aggregator backend API.
package backend

//
// client.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/config"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"golang.org/x/time/rate"
)

const maxResponseSize = 32 << 20

// Client send requests to the backend. Safe for concurrent use.
type Client struct {
	baseURL     string
	http        *http.Client
	limiter     *rate.Limiter
	logRequests bool
}

func New(conf config.BackendConf) *Client {
	var limiter *rate.Limiter
	if conf.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(conf.RateLimit), max(conf.RateBurst, 1))
	}

	return &Client{
		baseURL: strings.TrimSuffix(conf.URL, "/"),
		http: &http.Client{
			Timeout:   conf.Timeout,
			Transport: instrumentedTransport(http.DefaultTransport),
		},
		limiter:     limiter,
		logRequests: conf.LogRequests,
	}
}

func NewClientI(i do.Injector) (*Client, error) {
	conf := do.MustInvoke[config.BackendConf](i)

	return New(conf), nil
}

// HealthCheck verify backend is available; called by DI container.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/subs-info", nil)
	if err != nil {
		return err
	}

	resp.Body.Close()

	return nil
}

//-------------------------------------------------------------

// ListSubscriptions load all subscriptions in backend order.
func (c *Client) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	var records []subscriptionRecord
	if err := c.getJSON(ctx, "/subs-info", &records); err != nil {
		return nil, err
	}

	subs := make([]model.Subscription, 0, len(records))

	for _, r := range records {
		sub, err := r.toModel()
		if err != nil {
			return nil, err
		}

		subs = append(subs, sub)
	}

	return subs, nil
}

// ListVideos load videos of subscription identified by source key; order is undefined.
func (c *Client) ListVideos(ctx context.Context, sourceKey string) ([]model.Video, error) {
	var records []videoRecord
	if err := c.getJSON(ctx, "/vid-from-link/"+url.PathEscape(sourceKey), &records); err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(records))
	for _, r := range records {
		videos = append(videos, r.toModel())
	}

	return videos, nil
}

// AddSubscription register new channel/playlist url with given fetch interval (in seconds).
func (c *Client) AddSubscription(ctx context.Context, link string, interval int) (model.Subscription, error) {
	form := url.Values{}
	form.Set("url", link)
	form.Set("time_between_fetches", strconv.Itoa(interval))

	resp, err := c.do(ctx, http.MethodPost, "/add-sub/", form)
	if err != nil {
		return model.Subscription{}, err
	}

	defer resp.Body.Close()

	var record addSubscriptionRecord
	if err := decodeBody(resp, &record); err != nil {
		return model.Subscription{}, err
	}

	// backend may report rejection with success status
	if record.Error != "" {
		serr := &StatusError{Status: resp.StatusCode, Message: record.Error}

		return model.Subscription{}, aerr.Wrap(serr).WithMeta("path", "/add-sub/")
	}

	// some backend versions return only status
	if record.ID == "" {
		return model.Subscription{}, nil
	}

	return record.toModel()
}

// SetViewed update last viewed time of subscription.
func (c *Client) SetViewed(ctx context.Context, sourceKey string, viewed time.Time) error {
	form := url.Values{}
	form.Set("_id", sourceKey)
	form.Set("viewed_time", viewed.UTC().Format(viewedTimeLayout))

	return c.postForm(ctx, "/set-viewed/", form, nil)
}

// SetFetchInterval update fetch interval (in seconds) of subscription.
func (c *Client) SetFetchInterval(ctx context.Context, sourceKey string, interval int) error {
	form := url.Values{}
	form.Set("_id", sourceKey)
	form.Set("time_between_fetches", strconv.Itoa(interval))

	return c.postForm(ctx, "/set-time-between-fetches/", form, nil)
}

func (c *Client) DeleteSubscription(ctx context.Context, sourceKey string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/delete-sub/"+url.PathEscape(sourceKey), nil)
	if err != nil {
		return err
	}

	drainBody(resp)

	return nil
}

//-------------------------------------------------------------

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	return decodeBody(resp, target)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, target any) error {
	resp, err := c.do(ctx, http.MethodPost, path, form)
	if err != nil {
		return err
	}

	if target == nil {
		drainBody(resp)

		return nil
	}

	defer resp.Body.Close()

	return decodeBody(resp, target)
}

// do send request and check response status. On success caller must close response body.
func (c *Client) do(ctx context.Context, method, path string, form url.Values) (*http.Response, error) {
	logger := zerolog.Ctx(ctx).With().Str("method", method).Str("path", path).Logger()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, aerr.Wrapf(err, "wait for rate limiter failed")
		}
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, aerr.Wrapf(err, "create request failed").WithTag(aerr.InternalError)
	}

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.UserAgent())

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		common.TraceErrorLazyPrintf(ctx, "backend: %s %s error=%q", method, path, err)

		return nil, aerr.Wrapf(err, "send request failed").WithMeta("path", path)
	}

	if c.logRequests {
		logger.Debug().Int("status", resp.StatusCode).Dur("duration", time.Since(start)).
			Msg("backend: request finished")
	}

	common.TraceLazyPrintf(ctx, "backend: %s %s status=%d", method, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()

		serr := &StatusError{Status: resp.StatusCode, Message: readErrorMessage(resp)}

		return nil, aerr.Wrap(serr).WithMeta("path", path)
	}

	return resp, nil
}

//-------------------------------------------------------------

func decodeBody(resp *http.Response, target any) error {
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize))
	if err := dec.Decode(target); err != nil {
		return aerr.ApplyFor(common.ErrInvalidResponse, err)
	}

	return nil
}

func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
	resp.Body.Close()
}

// readErrorMessage try to get error message from `{"error": "..."}` response.
func readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)) //nolint:mnd
	if err != nil || len(data) == 0 {
		return ""
	}

	var rec errorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return ""
	}

	return strings.TrimSpace(rec.Error)
}

// String return client description used in logs.
func (c *Client) String() string {
	return fmt.Sprintf("backend.Client{%s}", c.baseURL)
}
