package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	kib = 1 << 10
	mib = 1 << 20
	gib = 1 << 30
	tib = 1 << 40
)

// FormatSize renders a byte count in human-readable units with one decimal
// place above the byte range.
//
// Example usage:
//
//	utils.FormatSize(184549376) // "176.0 MB"
func FormatSize(size uint64) string {
	switch {
	case size < kib:
		return fmt.Sprintf("%d B", size)
	case size < mib:
		return fmt.Sprintf("%.1f KB", float64(size)/kib)
	case size < gib:
		return fmt.Sprintf("%.1f MB", float64(size)/mib)
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/gib)
	}
}

// FormatSpeed renders a transfer rate in bytes per second.
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond < 0 {
		bytesPerSecond = 0
	}
	return FormatSize(uint64(bytesPerSecond)) + "/s"
}

// FormatETA renders an estimated remaining duration as "3m 20s".
// Durations of an hour or more include the hour component.
func FormatETA(eta time.Duration) string {
	if eta < 0 {
		eta = 0
	}
	total := int(eta.Seconds())
	if total >= 3600 {
		return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

var listingSizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(K|M|G|T)?`)

// ParseListingSize parses size cells of an Apache autoindex page, such as
// "176M", "1.2G" or "-" (no size), into a byte count. Unparseable input
// yields zero; the listing is advisory and a zero size only disables the
// resume/skip optimisation for that file.
func ParseListingSize(cell string) uint64 {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return 0
	}

	match := listingSizePattern.FindStringSubmatch(cell)
	if match == nil {
		return 0
	}

	num, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}

	switch match[2] {
	case "K":
		return uint64(num * kib)
	case "M":
		return uint64(num * mib)
	case "G":
		return uint64(num * gib)
	case "T":
		return uint64(num * tib)
	default:
		return uint64(num)
	}
}
