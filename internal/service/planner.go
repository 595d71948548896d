// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-file-syncer/internal/logger"
	"github.com/MKhiriev/go-file-syncer/internal/store"
	"github.com/MKhiriev/go-file-syncer/models"
)

type reconciliationPlanner struct {
	store store.LocalStore
	log   *logger.Logger
}

// NewPlanner builds a Planner over the local inventory.
func NewPlanner(st store.LocalStore, log *logger.Logger) Planner {
	return &reconciliationPlanner{store: st, log: log}
}

func (p *reconciliationPlanner) Plan(remote []models.FileInfo, extension string, filter FilterSpec) (*PlanResult, error) {
	names, err := p.store.Names(extension)
	if err != nil {
		return nil, err
	}
	sizes, err := p.store.Sizes()
	if err != nil {
		return nil, err
	}

	match, patternErr := compileFilter(filter)
	if patternErr != nil {
		p.log.Warn().Err(patternErr).Str("pattern", filter.Pattern).
			Msg("filter pattern does not compile, rejecting all candidates for this run")
	}

	result := &PlanResult{PatternErr: patternErr}
	for _, file := range remote {
		localSize, onDisk := sizes[file.Name]
		partial := onDisk && localSize < file.Size

		if _, present := names[file.Name]; present && !partial {
			// Complete locally, nothing to do.
			continue
		}
		if !match(file.Name) {
			result.FilteredOut = append(result.FilteredOut, file.Name)
			continue
		}

		entry := models.PlanEntry{File: file}
		if partial {
			entry.ResumeFrom = localSize
			result.Partials = append(result.Partials, models.PartialDownload{
				Name:            file.Name,
				LocalSize:       localSize,
				RemoteSize:      file.Size,
				PercentComplete: percentOf(localSize, file.Size),
			})
		}
		result.Entries = append(result.Entries, entry)
	}

	p.log.Debug().
		Int("remote", len(remote)).
		Int("planned", len(result.Entries)).
		Int("filtered_out", len(result.FilteredOut)).
		Int("resumable", len(result.Partials)).
		Msg("download plan computed")

	return result, nil
}

// compileFilter turns a FilterSpec into a name predicate. Disabled
// filtering and non-compiling patterns both yield a reject-all predicate:
// transfers require explicit opt-in. An empty pattern on an enabled filter
// matches everything. Matching uses search semantics, not full-match.
func compileFilter(filter FilterSpec) (func(string) bool, error) {
	if !filter.Enabled {
		return rejectAll, nil
	}

	pattern := filter.Pattern
	if pattern == "" {
		pattern = ".*"
	}
	if !filter.CaseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return rejectAll, fmt.Errorf("%w: %v", ErrInvalidFilterPattern, err)
	}
	return re.MatchString, nil
}

func rejectAll(string) bool { return false }

func percentOf(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
