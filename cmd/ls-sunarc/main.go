// Command ls-sunarc traces great arcs across the solar disk and queries the
// PROBA2 SWAP archive layout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-sunarc/frame"
	"github.com/litescript/ls-sunarc/greatarc"
	"github.com/litescript/ls-sunarc/internal/logging"
	"github.com/litescript/ls-sunarc/internal/ui"
	"github.com/litescript/ls-sunarc/internal/version"
	"github.com/litescript/ls-sunarc/swap"
)

// CLI flags
var (
	startArg     string
	endArg       string
	centerArg    string
	cartesian    bool
	points       int
	distanceMode bool
	sepMode      bool
	jsonMode     bool
	swapRange    string
	swapLevel    string
	showVersion  bool
)

func main() {
	flag.StringVar(&startArg, "start", "-40,10", "Arc start as lon,lat degrees (or x,y,z km with -cartesian)")
	flag.StringVar(&endArg, "end", "30,-15", "Arc end as lon,lat degrees (or x,y,z km with -cartesian)")
	flag.StringVar(&centerArg, "center", "", "Sphere center as x,y,z km (default: sun center)")
	flag.BoolVar(&cartesian, "cartesian", false, "Interpret -start/-end as heliocentric x,y,z km")
	flag.IntVar(&points, "points", 100, "Number of points to sample along the arc")
	flag.BoolVar(&distanceMode, "distance", false, "Print only the arc distance in km")
	flag.BoolVar(&sepMode, "separation", false, "Print only the angular separation in degrees")
	flag.BoolVar(&jsonMode, "json", false, "Print sampled points as JSON")
	flag.StringVar(&swapRange, "swap", "", "List SWAP archive URLs for a date range (YYYY-MM-DD..YYYY-MM-DD)")
	flag.StringVar(&swapLevel, "swap-level", "1", "SWAP data level (0, 1 or q)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-sunarc " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	if swapRange != "" {
		if err := runSwapListing(logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	headless := distanceMode || sepMode || jsonMode || cartesian ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	start, end, err := parseEndpointCoords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewDiskView(start, end, points)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless computes the requested arc quantities and prints them.
func runHeadless(logger *logging.Logger) error {
	if cartesian {
		return runCartesian(logger)
	}

	start, end, err := parseEndpointCoords()
	if err != nil {
		return err
	}

	adapter := frame.NewHeliographic(0)
	logger.Debug("arc from (%.2f, %.2f) to (%.2f, %.2f) on %s sphere",
		start.LonDeg, start.LatDeg, end.LonDeg, end.LatDeg, adapter.Unit())

	if distanceMode {
		dist, err := frame.Distance(adapter, start, end, nil)
		if err != nil {
			return err
		}
		fmt.Printf("%.3f km\n", dist)
		return nil
	}

	if sepMode {
		sep, err := frame.Separation(adapter, start, end, nil)
		if err != nil {
			return err
		}
		fmt.Printf("%.6f deg\n", sep*180/math.Pi)
		return nil
	}

	coords, err := frame.ArcThrough(adapter, start, end, nil, points)
	if err != nil {
		return err
	}

	if jsonMode {
		return writeCoordsJSON(os.Stdout, coords)
	}

	fmt.Printf("%10s %10s %14s\n", "lon[deg]", "lat[deg]", "radius[km]")
	for _, c := range coords {
		fmt.Printf("%10.4f %10.4f %14.1f\n", c.LonDeg, c.LatDeg, c.Radius)
	}
	return nil
}

// runCartesian works on raw heliocentric triples without a frame adapter.
func runCartesian(logger *logging.Logger) error {
	start, err := parseVec(startArg)
	if err != nil {
		return fmt.Errorf("-start: %w", err)
	}
	end, err := parseVec(endArg)
	if err != nil {
		return fmt.Errorf("-end: %w", err)
	}
	center := greatarc.Vec3{}
	if centerArg != "" {
		if center, err = parseVec(centerArg); err != nil {
			return fmt.Errorf("-center: %w", err)
		}
	}

	if distanceMode {
		dist, err := greatarc.Distance(start, end, center)
		if err != nil {
			return err
		}
		fmt.Printf("%.3f\n", dist)
		return nil
	}
	if sepMode {
		sep, err := greatarc.AngularSeparation(start, end, center)
		if err != nil {
			return err
		}
		fmt.Printf("%.6f deg\n", sep*180/math.Pi)
		return nil
	}

	samples, err := greatarc.SampleArc(start, end, center, points)
	if err != nil {
		return err
	}
	logger.Debug("sampled %d points", len(samples))

	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(samples)
	}

	fmt.Printf("%14s %14s %14s\n", "x", "y", "z")
	for _, p := range samples {
		fmt.Printf("%14.4f %14.4f %14.4f\n", p.X, p.Y, p.Z)
	}
	return nil
}

// runSwapListing prints the archive directory URLs for the requested range.
func runSwapListing(logger *logging.Logger) error {
	tr, err := parseSwapRange(swapRange)
	if err != nil {
		return err
	}
	level, err := parseSwapLevel(swapLevel)
	if err != nil {
		return err
	}

	client := swap.NewClient()
	urls, err := client.DirectoryURLs(tr, level)
	if err != nil {
		return err
	}
	logger.Debug("%d archive directories for level %v", len(urls), level)

	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(urls)
	}
	for _, u := range urls {
		fmt.Println(u)
	}
	return nil
}

func parseEndpointCoords() (frame.Coord, frame.Coord, error) {
	start, err := parseCoord(startArg)
	if err != nil {
		return frame.Coord{}, frame.Coord{}, fmt.Errorf("-start: %w", err)
	}
	end, err := parseCoord(endArg)
	if err != nil {
		return frame.Coord{}, frame.Coord{}, fmt.Errorf("-end: %w", err)
	}
	return start, end, nil
}

// parseCoord parses "lon,lat" or "lon,lat,radius".
func parseCoord(s string) (frame.Coord, error) {
	parts, err := parseFloats(s, 2, 3)
	if err != nil {
		return frame.Coord{}, err
	}
	c := frame.Coord{LonDeg: parts[0], LatDeg: parts[1]}
	if len(parts) == 3 {
		c.Radius = parts[2]
	}
	return c, nil
}

// parseVec parses "x,y,z".
func parseVec(s string) (greatarc.Vec3, error) {
	parts, err := parseFloats(s, 3, 3)
	if err != nil {
		return greatarc.Vec3{}, err
	}
	return greatarc.Vec3{X: parts[0], Y: parts[1], Z: parts[2]}, nil
}

func parseFloats(s string, min, max int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) < min || len(fields) > max {
		return nil, fmt.Errorf("expected %d-%d comma-separated values, got %q", min, max, s)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// parseSwapRange parses "YYYY-MM-DD..YYYY-MM-DD" (single date for one day).
func parseSwapRange(s string) (swap.TimeRange, error) {
	const layout = "2006-01-02"
	startStr, endStr, found := strings.Cut(s, "..")
	if !found {
		endStr = startStr
	}
	start, err := time.Parse(layout, startStr)
	if err != nil {
		return swap.TimeRange{}, fmt.Errorf("bad start date %q: %w", startStr, err)
	}
	end, err := time.Parse(layout, endStr)
	if err != nil {
		return swap.TimeRange{}, fmt.Errorf("bad end date %q: %w", endStr, err)
	}
	return swap.NewTimeRange(start, end)
}

func parseSwapLevel(s string) (swap.Level, error) {
	switch s {
	case "0":
		return swap.Level0, nil
	case "1":
		return swap.Level1, nil
	case "q", "Q":
		return swap.LevelQuicklook, nil
	default:
		return 0, fmt.Errorf("unknown SWAP level %q (want 0, 1 or q)", s)
	}
}

type coordJSON struct {
	Lon    float64 `json:"lon_deg"`
	Lat    float64 `json:"lat_deg"`
	Radius float64 `json:"radius_km"`
}

func writeCoordsJSON(w *os.File, coords []frame.Coord) error {
	out := make([]coordJSON, len(coords))
	for i, c := range coords {
		out[i] = coordJSON{Lon: c.LonDeg, Lat: c.LatDeg, Radius: c.Radius}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
