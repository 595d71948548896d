// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		size uint64
		want string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"kilobytes", 1536, "1.5 KB"},
		{"megabytes", 184549376, "176.0 MB"},
		{"gigabytes", 2 << 30, "2.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.size))
		})
	}
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "1.0 MB/s", FormatSpeed(1048576))
	assert.Equal(t, "0 B/s", FormatSpeed(-5))
}

func TestFormatETA(t *testing.T) {
	assert.Equal(t, "3m 20s", FormatETA(200*time.Second))
	assert.Equal(t, "0m 59s", FormatETA(59*time.Second))
	assert.Equal(t, "1h 2m 5s", FormatETA(3725*time.Second))
	assert.Equal(t, "0m 0s", FormatETA(-time.Second))
}

func TestParseListingSize(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want uint64
	}{
		{"plain bytes", "734", 734},
		{"kilo suffix", "12K", 12288},
		{"mega suffix", "176M", 184549376},
		{"fractional giga", "1.2G", 1288490188},
		{"dash means no size", "-", 0},
		{"empty", "", 0},
		{"padded", "  176M  ", 184549376},
		{"garbage", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseListingSize(tt.cell))
		})
	}
}
