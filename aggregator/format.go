// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package aggregator

import (
	"fmt"
	"io"
	"text/tabwriter"
	"unicode"

	"github.com/juju/errors"

	"github.com/juju/advancedstatus/core/status"
)

const naValue = "N/A"

// compactMessage renders the collapsed form of a status: its short
// message if it has one, else its message truncated to the display
// limit, followed by a pointer at the detail view.
func compactMessage(s status.Status, actionsToRun, additional int) string {
	message := s.ShortMessage
	if message == "" {
		message = s.Message
		if runes := []rune(message); len(runes) > status.MaxShortMessageLength {
			message = string(runes[:status.MaxShortMessageLength]) + "…"
		}
	}
	return fmt.Sprintf("%s. Run `%s`: %d action required; %d additional statuses.",
		message, DetailCommand, actionsToRun, additional)
}

// FormatTabular writes the full status detail for scope as a fixed
// five-column table, one row per entry in sorted order.
func FormatTabular(w io.Writer, scope status.Scope, entries []Entry) error {
	if _, err := fmt.Fprintf(w, "[%s Statuses]\n", capitalise(scope.String())); err != nil {
		return errors.Trace(err)
	}
	tw := tabwriter.NewWriter(w, 0, 1, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tCOMPONENT\tMESSAGE\tACTION\tREASON")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			capitalise(entry.Status.Status.String()),
			entry.Component,
			entry.Status.Message,
			orNA(entry.Status.Action),
			orNA(entry.Status.Check),
		)
	}
	return errors.Trace(tw.Flush())
}

// DetailRecord is one row of the machine-readable status dump.
type DetailRecord struct {
	Status        string `json:"Status"`
	ComponentName string `json:"ComponentName"`
	Message       string `json:"Message"`
	Action        string `json:"Action"`
	Reason        string `json:"Reason"`
}

// DetailRecords maps entries to dump records, preserving order.
func DetailRecords(entries []Entry) []DetailRecord {
	records := make([]DetailRecord, len(entries))
	for i, entry := range entries {
		records[i] = DetailRecord{
			Status:        capitalise(entry.Status.Status.String()),
			ComponentName: entry.Component,
			Message:       entry.Status.Message,
			Action:        orNA(entry.Status.Action),
			Reason:        orNA(entry.Status.Check),
		}
	}
	return records
}

// GroupRecords keys dump records by component, preserving the sorted
// order within each component's list.
func GroupRecords(entries []Entry) map[string][]DetailRecord {
	grouped := make(map[string][]DetailRecord)
	for _, entry := range entries {
		records := DetailRecords([]Entry{entry})
		grouped[entry.Component] = append(grouped[entry.Component], records[0])
	}
	return grouped
}

func orNA(s string) string {
	if s == "" {
		return naValue
	}
	return s
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
