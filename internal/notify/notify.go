// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify is the "show an error to the user" side channel of the
// access layer. Notifications are fire-and-forget: sinks never report
// failure to the caller.
package notify

import (
	"context"
	"io"

	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Notifier delivers a human-readable message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Func adapts an ordinary function to the Notifier interface.
type Func func(ctx context.Context, message string)

// Notify calls f(ctx, message).
func (f Func) Notify(ctx context.Context, message string) {
	f(ctx, message)
}

// Fanout delivers every message to all sinks, in order.
type Fanout []Notifier

// NewFanout groups sinks. Nil sinks are dropped.
func NewFanout(sinks ...Notifier) Fanout {
	f := make(Fanout, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			f = append(f, s)
		}
	}
	return f
}

func (f Fanout) Notify(ctx context.Context, message string) {
	for _, s := range f {
		s.Notify(ctx, message)
	}
}

// FromConfig builds the fanout of the sinks enabled in cfg. Toasts are
// written to out.
func FromConfig(cfg config.Notifier, out io.Writer, log *logger.Logger) Fanout {
	sinks := make([]Notifier, 0, len(cfg.Sinks))
	for _, name := range cfg.Sinks {
		switch name {
		case config.SinkLog:
			sinks = append(sinks, NewLogSink(log))
		case config.SinkToast:
			sinks = append(sinks, NewToastSink(out))
		case config.SinkWebhook:
			sinks = append(sinks, NewWebhookSink(cfg.WebhookURL, cfg.WebhookTimeout, log))
		default:
			log.Warn().Str("func", "notify.FromConfig").Str("sink", name).Msg("unknown notification sink skipped")
		}
	}
	return NewFanout(sinks...)
}
