// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves tafsir pages over HTTP. Requests are paced by a
// fixed delay, bounded by a total timeout, and never retried; every failure
// is returned as a NetworkError for the caller to log and skip.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pdiddy/tafsir-engine/internal/httputil"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultDelay     = 1 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Fetcher issues rate-limited GET requests.
type Fetcher struct {
	client   *resty.Client
	throttle *httputil.Throttle
	logger   *slog.Logger
}

// New builds a Fetcher from cfg. Zero Timeout and empty UserAgent fall back
// to the defaults. A zero Delay is kept as zero so tests can run unthrottled;
// callers wanting the default pace set DefaultDelay explicitly.
func New(cfg types.HTTPConfig, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept-Charset", "utf-8").
		SetLogger(restyLogger{logger: logger})

	return &Fetcher{
		client:   client,
		throttle: httputil.NewThrottle(cfg.Delay),
		logger:   logger,
	}
}

// Fetch waits for the throttle, then GETs url and returns the response body.
// Transport errors, timeouts, and non-2xx statuses become NetworkError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.throttle.Wait(ctx); err != nil {
		return nil, types.NewFailure(types.KindNetwork, err, "GET %s", url)
	}

	f.logger.InfoContext(ctx, "fetching", "url", url)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		f.logger.ErrorContext(ctx, "request failed", "url", url, "err", err)
		return nil, types.NewFailure(types.KindNetwork, err, "GET %s", url)
	}
	if !resp.IsSuccess() {
		err := fmt.Errorf("HTTP %d", resp.StatusCode())
		f.logger.ErrorContext(ctx, "request failed", "url", url, "err", err)
		return nil, types.NewFailure(types.KindNetwork, err, "GET %s", url)
	}

	return resp.Body(), nil
}

// restyLogger routes resty's internal messages to slog at debug level so
// they do not duplicate the fetcher's own failure events.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
