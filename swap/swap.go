// Package swap maps time ranges onto PROBA2 SWAP archive locations. The
// archive at proba2.oma.be organizes files by processing level into daily
// directories; this package produces those URLs and filename layouts without
// performing any retrieval.
package swap

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BaseURL is the root of the PROBA2 SWAP data archive.
const BaseURL = "http://proba2.oma.be/swap/data/"

// ErrBeforeMission is returned for time ranges that begin before SWAP data
// exists for the requested level.
var ErrBeforeMission = errors.New("time range starts before available SWAP data")

// ErrInvalidRange is returned for a time range whose end precedes its start.
var ErrInvalidRange = errors.New("time range end precedes start")

// Level is the SWAP data processing level.
type Level int

const (
	// Level0 is raw engineering data.
	Level0 Level = iota

	// Level1 is calibrated basic science data.
	Level1

	// LevelQuicklook is the browse-quality JPEG 2000 product.
	LevelQuicklook
)

// datatype returns the archive directory name for the level.
func (l Level) datatype() string {
	switch l {
	case Level0:
		return "eng"
	case Level1:
		return "bsd"
	default:
		return "qlk"
	}
}

func (l Level) String() string {
	switch l {
	case Level0:
		return "0"
	case Level1:
		return "1"
	default:
		return "q"
	}
}

// startDate returns the earliest date for which the level has data. The
// level-dependent start dates are taken from the SWAP website.
func (l Level) startDate() time.Time {
	if l == LevelQuicklook {
		return time.Date(2010, 1, 4, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(2009, 11, 24, 0, 0, 0, 0, time.UTC)
}

// TimeRange is a closed interval of time.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange validates and returns a time range.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if end.Before(start) {
		return TimeRange{}, fmt.Errorf("%w: %v before %v", ErrInvalidRange, end, start)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Client maps queries onto SWAP archive URLs.
type Client struct {
	base string
}

// NewClient creates a client rooted at the public SWAP archive.
func NewClient() *Client {
	return &Client{base: BaseURL}
}

// DirectoryURLs returns one archive directory URL per UTC day covered by the
// time range, in chronological order. Files for a day live flat inside its
// directory, named per FileName.
func (c *Client) DirectoryURLs(tr TimeRange, level Level) ([]string, error) {
	if tr.End.Before(tr.Start) {
		return nil, fmt.Errorf("%w: %v before %v", ErrInvalidRange, tr.End, tr.Start)
	}
	if tr.Start.Before(level.startDate()) {
		return nil, fmt.Errorf("%w: earliest date for level %v is %s",
			ErrBeforeMission, level, level.startDate().Format("2006-01-02"))
	}

	var urls []string
	day := tr.Start.UTC().Truncate(24 * time.Hour)
	last := tr.End.UTC().Truncate(24 * time.Hour)
	for !day.After(last) {
		urls = append(urls, c.base+level.datatype()+day.Format("/2006/01/02/"))
		day = day.AddDate(0, 0, 1)
	}
	return urls, nil
}

// quicklookSuffix trails the timestamp in quicklook filenames. 174 is the
// SWAP passband in Angstrom.
const quicklookSuffix = "__PROBA2_SWAP_SWAP_174.jp2"

// FileName returns the archive filename for an observation at the given
// timestamp.
func FileName(t time.Time, level Level) string {
	t = t.UTC()
	switch level {
	case Level0, Level1:
		return fmt.Sprintf("swap_lv%s_%s.fits", level, t.Format("20060102_150405"))
	default:
		return t.Format("2006_01_02__15_04_05") + quicklookSuffix
	}
}

// ParseFileName extracts the observation timestamp from an archive filename
// of the given level.
func ParseFileName(name string, level Level) (time.Time, error) {
	switch level {
	case Level0, Level1:
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, "swap_lv"+level.String()+"_"), ".fits")
		t, err := time.Parse("20060102_150405", stamp)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse %q: %w", name, err)
		}
		return t, nil
	default:
		t, err := time.Parse("2006_01_02__15_04_05", strings.TrimSuffix(name, quicklookSuffix))
		if err != nil {
			return time.Time{}, fmt.Errorf("parse %q: %w", name, err)
		}
		return t, nil
	}
}

// FileURL returns the full archive URL of the file with the given
// observation timestamp.
func (c *Client) FileURL(t time.Time, level Level) (string, error) {
	if t.Before(level.startDate()) {
		return "", fmt.Errorf("%w: earliest date for level %v is %s",
			ErrBeforeMission, level, level.startDate().Format("2006-01-02"))
	}
	t = t.UTC()
	return c.base + level.datatype() + t.Format("/2006/01/02/") + FileName(t, level), nil
}

// CanHandle reports whether this client serves the given instrument and
// level combination.
func (c *Client) CanHandle(instrument string, level Level) bool {
	if !strings.EqualFold(instrument, "swap") {
		return false
	}
	return level == Level0 || level == Level1 || level == LevelQuicklook
}

// Metadata describes the data source.
func (c *Client) Metadata() map[string]string {
	return map[string]string{
		"source":     "PROBA2",
		"instrument": "SWAP",
		"physobs":    "irradiance",
		"provider":   "ESA",
		"wavelength": "174 Angstrom",
	}
}
