package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/reoring/goarr/codec"
	"github.com/reoring/goarr/internal/filter"
	"github.com/reoring/goarr/sonarr"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// table writes tab-separated rows under a styled header.
type table struct {
	w *tabwriter.Writer
}

func newTable(e *env, columns ...string) *table {
	t := &table{w: tabwriter.NewWriter(e.stdout, 2, 0, 3, ' ', 0)}
	styled := make([]string, len(columns))
	for i, c := range columns {
		styled[i] = headerStyle.Render(c)
	}
	fmt.Fprintln(t.w, strings.Join(styled, "\t"))
	return t
}

func (t *table) row(cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

func (t *table) flush() error { return t.w.Flush() }

func filterFlag(fs *pflag.FlagSet) *string {
	return fs.String("filter", "", `CEL predicate over each record's JSON form, e.g. 'r.status == "downloading"'`)
}

func statusCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "status")
	conn := addConnFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := conn.sonarr(e)
	if err != nil {
		return err
	}
	st, err := c.SystemStatus(ctx)
	if err != nil {
		return err
	}
	t := newTable(e, "KEY", "VALUE")
	t.row("version", st.Version)
	t.row("branch", st.Branch)
	t.row("build", st.BuildTime.Format(time.RFC3339))
	t.row("app data", st.AppData)
	t.row("os", st.OSVersion)
	return t.flush()
}

func queueCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "queue")
	conn := addConnFlags(fs)
	expr := filterFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := filter.Compile(*expr)
	if err != nil {
		return err
	}
	sc, rc, err := conn.client(e)
	if err != nil {
		return err
	}
	t := newTable(e, "ID", "TITLE", "STATUS", "PROTOCOL", "LEFT", "TIME LEFT")
	if rc != nil {
		items, err := rc.Queue(ctx)
		if err != nil {
			return err
		}
		if items, err = filter.Select(ctx, f, items); err != nil {
			return err
		}
		for _, it := range items {
			left := "-"
			if it.TimeLeft != nil {
				left = formatDuration(*it.TimeLeft)
			}
			t.row(it.ID, it.Title, it.Status, it.Protocol, humanBytes(it.SizeLeft), left)
		}
		return t.flush()
	}
	items, err := sc.Queue(ctx)
	if err != nil {
		return err
	}
	if items, err = filter.Select(ctx, f, items); err != nil {
		return err
	}
	for _, it := range items {
		t.row(it.ID, it.Title, it.Status, it.Protocol, humanBytes(it.SizeLeft), formatDuration(it.TimeLeft))
	}
	return t.flush()
}

func calendarCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "calendar")
	conn := addConnFlags(fs)
	var startArg, endArg string
	fs.StringVar(&startArg, "start", "", "first day, YYYY-MM-DD")
	fs.StringVar(&endArg, "end", "", "last day, YYYY-MM-DD")
	expr := filterFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := filter.Compile(*expr)
	if err != nil {
		return err
	}
	var start, end codec.Date
	if startArg != "" {
		if start, err = codec.ParseDate(startArg); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}
	if endArg != "" {
		if end, err = codec.ParseDate(endArg); err != nil {
			return fmt.Errorf("--end: %w", err)
		}
	}
	sc, rc, err := conn.client(e)
	if err != nil {
		return err
	}
	if rc != nil {
		movies, err := rc.Calendar(ctx, start, end)
		if err != nil {
			return err
		}
		if movies, err = filter.Select(ctx, f, movies); err != nil {
			return err
		}
		t := newTable(e, "ID", "TITLE", "YEAR", "STATUS", "HAS FILE")
		for _, m := range movies {
			t.row(m.ID, m.Title, m.Year, m.Status, m.HasFile)
		}
		return t.flush()
	}
	eps, err := sc.Calendar(ctx, start, end)
	if err != nil {
		return err
	}
	if eps, err = filter.Select(ctx, f, eps); err != nil {
		return err
	}
	t := newTable(e, "AIRS", "SERIES", "EPISODE", "TITLE")
	for _, ep := range eps {
		series := strconv.Itoa(ep.SeriesID)
		if ep.Series != nil {
			series = ep.Series.Title
		}
		t.row(ep.AirDateUTC.Local().Format("2006-01-02 15:04"), series, fmt.Sprintf("S%02dE%02d", ep.SeasonNumber, ep.EpisodeNumber), ep.Title)
	}
	return t.flush()
}

func seriesCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "series")
	conn := addConnFlags(fs)
	var term string
	fs.StringVar(&term, "lookup", "", "search TheTVDB instead of listing the library")
	expr := filterFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := filter.Compile(*expr)
	if err != nil {
		return err
	}
	c, err := conn.sonarr(e)
	if err != nil {
		return err
	}
	list := c.AllSeries
	if term != "" {
		list = func(ctx context.Context) ([]sonarr.Series, error) { return c.LookupSeries(ctx, term) }
	}
	all, err := list(ctx)
	if err != nil {
		return err
	}
	if all, err = filter.Select(ctx, f, all); err != nil {
		return err
	}
	t := newTable(e, "ID", "TITLE", "YEAR", "SEASONS", "MONITORED")
	for _, s := range all {
		id, year := "-", "-"
		if s.ID != nil {
			id = strconv.Itoa(*s.ID)
		}
		if s.Year != nil {
			year = strconv.Itoa(*s.Year)
		}
		t.row(id, s.Title, year, len(s.Seasons), s.Monitored)
	}
	return t.flush()
}

func formatDuration(d time.Duration) string {
	s, err := codec.FormatDuration(d)
	if err != nil {
		return d.String()
	}
	return s
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
