package middleware

import (
	"testing"
	"time"
)

func TestSlidingWindow_Allow(t *testing.T) {
	base := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	t.Run("denies past the limit", func(t *testing.T) {
		sw := newSlidingWindow(2, time.Minute)

		if !sw.allow("10.0.0.1", base) {
			t.Error("allow() first hit = false, want true")
		}
		if !sw.allow("10.0.0.1", base.Add(time.Second)) {
			t.Error("allow() second hit = false, want true")
		}
		if sw.allow("10.0.0.1", base.Add(2*time.Second)) {
			t.Error("allow() third hit = true, want denied")
		}
	})

	t.Run("window expiry frees the budget", func(t *testing.T) {
		sw := newSlidingWindow(1, time.Minute)

		if !sw.allow("10.0.0.1", base) {
			t.Error("allow() first hit = false, want true")
		}
		if sw.allow("10.0.0.1", base.Add(30*time.Second)) {
			t.Error("allow() inside window = true, want denied")
		}
		if !sw.allow("10.0.0.1", base.Add(61*time.Second)) {
			t.Error("allow() after window = false, want true")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		sw := newSlidingWindow(1, time.Minute)

		if !sw.allow("10.0.0.1", base) {
			t.Error("allow() first key = false, want true")
		}
		if !sw.allow("10.0.0.2", base) {
			t.Error("allow() second key = false, want true")
		}
	})
}
