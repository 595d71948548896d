// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-file-syncer/internal/service"
	"github.com/MKhiriev/go-file-syncer/internal/utils"
	"github.com/MKhiriev/go-file-syncer/models"
)

const (
	progressBarWidth = 30
	filteredListCap  = 10
	timeRound        = time.Second
)

// TerminalPresenter renders run events as terminal lines and implements
// both the service.Presenter and service.Confirmer ports. Progress ticks
// redraw a single line with a carriage return; every other event first
// finishes that line so output never interleaves.
type TerminalPresenter struct {
	out io.Writer
	in  *bufio.Reader
	st  styles

	progressOpen bool
}

// NewTerminalPresenter builds a presenter on stdout/stdin.
func NewTerminalPresenter(noColor bool) *TerminalPresenter {
	return &TerminalPresenter{
		out: os.Stdout,
		in:  bufio.NewReader(os.Stdin),
		st:  newStyles(noColor),
	}
}

func (p *TerminalPresenter) Banner(serverURL, localDir, downloadDir string) {
	fmt.Fprintln(p.out, p.st.Title.Render("File synchronizer"))
	fmt.Fprintf(p.out, "  server:    %s\n", serverURL)
	fmt.Fprintf(p.out, "  local:     %s\n", localDir)
	fmt.Fprintf(p.out, "  downloads: %s\n\n", downloadDir)
}

func (p *TerminalPresenter) FilterDisabledWarning() {
	p.closeProgressLine()
	fmt.Fprintln(p.out, p.st.Warn.Render("WARNING: file filtering is disabled."))
	fmt.Fprintln(p.out, "Without a filter pattern, every missing remote file is a download candidate.")
}

func (p *TerminalPresenter) InvalidPatternWarning(pattern string, err error) {
	p.closeProgressLine()
	fmt.Fprintln(p.out, p.st.Warn.Render(fmt.Sprintf("WARNING: filter pattern %q is invalid: %v", pattern, err)))
	fmt.Fprintln(p.out, "No files will be downloaded this run.")
}

func (p *TerminalPresenter) PlanSummary(plan *service.PlanResult, estimate uint64) {
	p.closeProgressLine()

	fmt.Fprintln(p.out, p.st.Title.Render("Download plan"))
	for _, entry := range plan.Entries {
		if entry.IsResume() {
			fmt.Fprintf(p.out, "  %s  %s (resume from %s, %s remaining)\n",
				entry.File.Name,
				utils.FormatSize(entry.File.Size),
				utils.FormatSize(entry.ResumeFrom),
				utils.FormatSize(entry.RemainingBytes()))
			continue
		}
		fmt.Fprintf(p.out, "  %s  %s\n", entry.File.Name, utils.FormatSize(entry.File.Size))
	}

	if len(plan.Partials) > 0 {
		fmt.Fprintln(p.out, "Resumable downloads:")
		for _, partial := range plan.Partials {
			pct := p.st.barStyle(partial.PercentComplete).Render(fmt.Sprintf("%.1f%%", partial.PercentComplete))
			fmt.Fprintf(p.out, "  %s: %s complete (%s of %s)\n",
				partial.Name, pct,
				utils.FormatSize(partial.LocalSize),
				utils.FormatSize(partial.RemoteSize))
		}
	}

	if len(plan.FilteredOut) > 0 {
		fmt.Fprintln(p.out, p.st.Dim.Render(fmt.Sprintf("  (%d file(s) filtered out)", len(plan.FilteredOut))))
	}
	fmt.Fprintf(p.out, "Total to transfer: %s\n", utils.FormatSize(estimate))
	fmt.Fprintln(p.out, p.st.Dim.Render("Press Ctrl+C to gracefully terminate the download."))
}

func (p *TerminalPresenter) FileStart(entry models.PlanEntry, index, total int) {
	p.closeProgressLine()

	action := "Downloading"
	detail := ""
	if entry.IsResume() {
		action = "Resuming"
		detail = fmt.Sprintf(" (from %s)", utils.FormatSize(entry.ResumeFrom))
	}
	fmt.Fprintf(p.out, "File %d of %d: %s %s%s...\n", index, total, action, entry.File.Name, detail)
}

func (p *TerminalPresenter) FileEnd(entry models.PlanEntry, result models.FetchResult) {
	p.closeProgressLine()

	switch result.Status {
	case models.FetchSuccess:
		fmt.Fprintln(p.out, p.st.Success.Render(fmt.Sprintf("  done: %s (%s written)",
			entry.File.Name, utils.FormatSize(result.BytesWritten))))
	case models.FetchCancelled:
		fmt.Fprintln(p.out, p.st.Warn.Render(fmt.Sprintf("  cancelled: %s (partial kept for resume)", entry.File.Name)))
	default:
		fmt.Fprintln(p.out, p.st.Error.Render(fmt.Sprintf("  failed: %s", entry.File.Name)))
	}
}

func (p *TerminalPresenter) Progress(ev service.ProgressEvent) {
	line := p.renderProgress(ev)
	fmt.Fprintf(p.out, "\r%s", line)
	p.progressOpen = true
	if ev.Done {
		fmt.Fprintln(p.out)
		p.progressOpen = false
	}
}

func (p *TerminalPresenter) renderProgress(ev service.ProgressEvent) string {
	var sb strings.Builder

	if ev.Total > 0 {
		filled := int(ev.Percent / 100 * progressBarWidth)
		if filled > progressBarWidth {
			filled = progressBarWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
		sb.WriteString("[" + p.st.barStyle(ev.Percent).Render(bar) + "] ")
		fmt.Fprintf(&sb, "%5.1f%%  ", ev.Percent)
		fmt.Fprintf(&sb, "%s / %s  ", utils.FormatSize(ev.Current), utils.FormatSize(ev.Total))
	} else {
		fmt.Fprintf(&sb, "%s  ", utils.FormatSize(ev.Current))
	}

	sb.WriteString(utils.FormatSpeed(ev.Speed))
	if ev.HasETA {
		sb.WriteString("  ETA " + utils.FormatETA(ev.ETA))
	} else if !ev.Done {
		sb.WriteString("  ETA --")
	}
	return sb.String()
}

func (p *TerminalPresenter) FinalSummary(result *models.SyncResult, filter service.FilterSpec) {
	p.closeProgressLine()
	fmt.Fprintln(p.out)

	switch {
	case result.Cancelled:
		fmt.Fprintln(p.out, p.st.Warn.Render("Sync cancelled."))
	case result.OK():
		fmt.Fprintln(p.out, p.st.Success.Render("Sync complete."))
	default:
		fmt.Fprintln(p.out, p.st.Error.Render("Sync finished with failures."))
	}

	if len(result.Downloaded) > 0 {
		fmt.Fprintf(p.out, "Downloaded (%d):\n", len(result.Downloaded))
		for _, name := range result.Downloaded {
			fmt.Fprintf(p.out, "  %s\n", name)
		}
	}
	if len(result.Failed) > 0 {
		fmt.Fprintln(p.out, p.st.Error.Render(fmt.Sprintf("Failed (%d):", len(result.Failed))))
		for _, name := range result.Failed {
			fmt.Fprintf(p.out, "  %s\n", name)
		}
		fmt.Fprintln(p.out, p.st.Dim.Render("Rerun to resume failed files from the bytes already on disk."))
	}
	if len(result.FilteredOut) > 0 {
		fmt.Fprintf(p.out, "Filtered out (%d):\n", len(result.FilteredOut))
		for i, name := range result.FilteredOut {
			if i == filteredListCap {
				fmt.Fprintf(p.out, "  ... and %d more\n", len(result.FilteredOut)-filteredListCap)
				break
			}
			fmt.Fprintf(p.out, "  %s\n", name)
		}
	}

	if result.TotalBytesMoved > 0 {
		fmt.Fprintf(p.out, "Moved %s in %s (%s)\n",
			utils.FormatSize(result.TotalBytesMoved),
			result.Elapsed().Round(timeRound),
			utils.FormatSpeed(result.AverageSpeed()))
	}
	if filter.Enabled && filter.Pattern != "" {
		fmt.Fprintln(p.out, p.st.Dim.Render(fmt.Sprintf("Filter: %s (case-sensitive: %v)", filter.Pattern, filter.CaseSensitive)))
	}
}

// closeProgressLine finishes a pending \r progress line so the next output
// starts on a fresh line.
func (p *TerminalPresenter) closeProgressLine() {
	if p.progressOpen {
		fmt.Fprintln(p.out)
		p.progressOpen = false
	}
}
