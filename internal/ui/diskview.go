// Package ui renders the solar disk and great arcs across it as a terminal
// view.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sunarc/frame"
	"github.com/litescript/ls-sunarc/greatarc"
	"github.com/litescript/ls-sunarc/solar"
)

const (
	minPoints = 2
	maxPoints = 500

	rotationStep = 24 * time.Hour

	// Glyphs
	glyphLimb     = '·'
	glyphArc      = '•'
	glyphEndpoint = '◆'
	glyphFarSide  = '·'

	// Colors
	colorLimb     = "60"  // muted purple
	colorArc      = "213" // pink
	colorEndpoint = "229" // bright gold
	colorFarSide  = "240" // dim gray
	colorTitle    = "135" // violet
)

// DiskViewModel renders the visible solar hemisphere with the sampled great
// arc between two heliographic points drawn across it.
type DiskViewModel struct {
	width  int
	height int

	adapter *frame.Heliographic

	start frame.Coord
	end   frame.Coord
	count int

	profile     solar.RotProfile
	rotatedDays int

	// Derived on every change
	arc     greatarc.GreatArc
	samples []greatarc.Vec3
	arcErr  error

	disk solar.DiskGeometry
}

// NewDiskView creates a disk view for the arc between two heliographic
// coordinates sampled at count points.
func NewDiskView(start, end frame.Coord, count int) DiskViewModel {
	if count < minPoints {
		count = minPoints
	}
	m := DiskViewModel{
		adapter: frame.NewHeliographic(0),
		start:   start,
		end:     end,
		count:   count,
		disk:    solar.Disk(time.Now()),
	}
	m.recompute()
	return m
}

// recompute re-derives the arc and its samples from the current endpoints.
func (m *DiskViewModel) recompute() {
	m.samples = nil
	s, err := m.adapter.ToCartesian(m.start)
	if err != nil {
		m.arcErr = err
		return
	}
	e, err := m.adapter.ToCartesian(m.end)
	if err != nil {
		m.arcErr = err
		return
	}

	arc, err := greatarc.Compute(s, e, m.adapter.Origin())
	if err != nil {
		m.arcErr = err
		return
	}
	samples, err := arc.Sample(m.count)
	if err != nil {
		m.arcErr = err
		return
	}

	m.arc = arc
	m.samples = samples
	m.arcErr = nil
}

// Init implements tea.Model.
func (m DiskViewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DiskViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			if m.count < maxPoints {
				m.count += 10
				m.recompute()
			}
		case "-", "_":
			if m.count-10 >= minPoints {
				m.count -= 10
			} else {
				m.count = minPoints
			}
			m.recompute()
		case "n":
			m = m.rotate(rotationStep)
		case "p":
			m = m.rotate(-rotationStep)
		case "r":
			m.profile = (m.profile + 1) % 3
		}
	}

	return m, nil
}

// rotate applies one step of differential rotation to both endpoints.
func (m DiskViewModel) rotate(d time.Duration) DiskViewModel {
	m.start.LonDeg, m.start.LatDeg = solar.RotateHeliographic(
		m.start.LonDeg, m.start.LatDeg, d, m.profile, solar.RotSynodic)
	m.end.LonDeg, m.end.LatDeg = solar.RotateHeliographic(
		m.end.LonDeg, m.end.LatDeg, d, m.profile, solar.RotSynodic)
	if d > 0 {
		m.rotatedDays++
	} else {
		m.rotatedDays--
	}
	m.recompute()
	return m
}

// View implements tea.Model.
func (m DiskViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Disk view requires a larger terminal"
	}

	canvasHeight := m.height - 4

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderDisk(m.width, canvasHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m DiskViewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorLimb))

	title := titleStyle.Render("Solar Disk")
	endpoints := dimStyle.Render(fmt.Sprintf("(%.1f°,%.1f°) → (%.1f°,%.1f°)",
		m.start.LonDeg, m.start.LatDeg, m.end.LonDeg, m.end.LatDeg))
	profile := dimStyle.Render("profile: " + m.profile.String())

	return fmt.Sprintf("%s | %s | %s", title, endpoints, profile)
}

func (m DiskViewModel) renderStatus() string {
	if m.arcErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		return errStyle.Render("arc undefined: " + m.arcErr.Error())
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorEndpoint))
	line := fmt.Sprintf("sep %.2f° | dist %s | %d pts | rotated %+dd | B0 %.2f° P %.2f°",
		m.arc.InnerAngle()*180/math.Pi,
		formatKm(m.arc.Distance()),
		m.count,
		m.rotatedDays,
		m.disk.B0Deg,
		m.disk.PDeg,
	)
	return accentStyle.Render(line)
}

// renderDisk draws the limb and arc samples onto a rune canvas. The view
// looks down the +X axis of the heliographic frame: +Y (east) maps right,
// +Z (north) maps up. Samples on the far hemisphere are dimmed.
func (m DiskViewModel) renderDisk(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
		}
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	// Terminal cells are roughly twice as tall as wide.
	rx := math.Min(float64(width)/2-1, float64(height)-1)
	ry := rx / 2

	// Limb
	for deg := 0; deg < 360; deg++ {
		a := float64(deg) * math.Pi / 180
		x := int(cx + rx*math.Cos(a))
		y := int(cy + ry*math.Sin(a))
		if x >= 0 && x < width && y >= 0 && y < height {
			canvas[y][x] = glyphLimb
			colors[y][x] = colorLimb
		}
	}

	// Arc samples
	r := m.adapter.SphereRadiusKm()
	for i, p := range m.samples {
		u := p.Y / r  // east, rightward
		v := -p.Z / r // north, upward on screen

		x := int(cx + u*rx)
		y := int(cy + v*ry)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		glyph := glyphArc
		color := lipgloss.Color(colorArc)
		if p.X < 0 {
			// Far hemisphere
			glyph = glyphFarSide
			color = colorFarSide
		}
		if i == 0 || i == len(m.samples)-1 {
			glyph = glyphEndpoint
			color = colorEndpoint
		}
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if canvas[y][x] == ' ' {
				b.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatKm(km float64) string {
	if km >= 1e6 {
		return fmt.Sprintf("%.2f Mkm", km/1e6)
	}
	if km >= 1e3 {
		return fmt.Sprintf("%.0f km", km)
	}
	return fmt.Sprintf("%.1f km", km)
}
