package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"chartlab-go/src/editor"
	"chartlab-go/src/generator"
	"chartlab-go/src/indicators"
	"chartlab-go/src/models"
	"chartlab-go/src/rng"
	"chartlab-go/src/timeframe"
	"chartlab-go/src/viewport"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v (using system environment)", err)
	}
	cfg := loadConfigFromEnv()
	log.Printf("starting chart editor - config: %+v", cfg)

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("chart editor failed: %v", err)
	}
}

// Config holds the generator settings for the initial series.
type Config struct {
	Bars       int
	Seed       int64
	StartPrice float64
	Drift      float64
	Volatility float64
	Substeps   int
}

// loadConfigFromEnv reads generator settings from environment variables,
// falling back to defaults on missing or unparsable values.
func loadConfigFromEnv() Config {
	cfg := Config{
		Bars:       300,
		Seed:       42,
		StartPrice: 100.0,
		Drift:      0.0005,
		Volatility: 0.01,
		Substeps:   8,
	}
	if v := os.Getenv("CHART_BARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Bars = n
		} else {
			log.Printf("warning: cannot parse CHART_BARS=%s, using default %d", v, cfg.Bars)
		}
	}
	if v := os.Getenv("CHART_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			log.Printf("warning: cannot parse CHART_SEED=%s, using default %d", v, cfg.Seed)
		}
	}
	if v := os.Getenv("CHART_START_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.StartPrice = f
		} else {
			log.Printf("warning: cannot parse CHART_START_PRICE=%s, using default %.2f", v, cfg.StartPrice)
		}
	}
	if v := os.Getenv("CHART_DRIFT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Drift = f
		} else {
			log.Printf("warning: cannot parse CHART_DRIFT=%s, using default %g", v, cfg.Drift)
		}
	}
	if v := os.Getenv("CHART_VOLATILITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Volatility = f
		} else {
			log.Printf("warning: cannot parse CHART_VOLATILITY=%s, using default %g", v, cfg.Volatility)
		}
	}
	if v := os.Getenv("CHART_SUBSTEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Substeps = n
		} else {
			log.Printf("warning: cannot parse CHART_SUBSTEPS=%s, using default %d", v, cfg.Substeps)
		}
	}
	return cfg
}

var (
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("236"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chartModel is the bubbletea program state. All numerics live in the
// library packages; the model only orchestrates them and draws.
type chartModel struct {
	cfg     Config
	base    []models.Bar
	gran    int
	vp      viewport.Viewport
	cursor  int // display index under the cursor
	session *editor.Session
	engine  *editor.Engine
	calc    *indicators.Calculator
	width   int
	height  int
	status  string
}

func newModel(cfg Config) chartModel {
	params := generator.Params{
		StartPrice: cfg.StartPrice,
		Drift:      cfg.Drift,
		Volatility: cfg.Volatility,
		Substeps:   cfg.Substeps,
	}
	base := generator.Generate(cfg.Bars, params, rng.NewSeeded(cfg.Seed))
	return chartModel{
		cfg:     cfg,
		base:    base,
		gran:    1,
		vp:      viewport.Viewport{Start: 0, Count: 80}.Clamp(len(base)),
		cursor:  len(base) - 1,
		session: editor.NewSession(),
		engine:  editor.NewEngine(rng.SourcePicker(rng.NewTimeSeeded())),
		calc:    indicators.NewCalculator(),
	}
}

func (m chartModel) Init() tea.Cmd { return nil }

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m chartModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	display := timeframe.Aggregate(m.base, m.gran)
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
		m.vp = m.followCursor(len(display))
	case "right":
		if m.cursor < len(display)-1 {
			m.cursor++
		}
		m.vp = m.followCursor(len(display))
	case "+", "=":
		m.vp = m.vp.Zoom(0.8, len(display))
	case "-":
		m.vp = m.vp.Zoom(1.25, len(display))
	case "1":
		m = m.setGranularity(1)
	case "2":
		m = m.setGranularity(5)
	case "3":
		m = m.setGranularity(15)
	case "o":
		m = m.nudgeField(editor.FieldOpen, -1, display)
	case "O":
		m = m.nudgeField(editor.FieldOpen, +1, display)
	case "h":
		m = m.nudgeField(editor.FieldHigh, -1, display)
	case "H":
		m = m.nudgeField(editor.FieldHigh, +1, display)
	case "l":
		m = m.nudgeField(editor.FieldLow, -1, display)
	case "L":
		m = m.nudgeField(editor.FieldLow, +1, display)
	case "c":
		m = m.nudgeField(editor.FieldClose, -1, display)
	case "C":
		m = m.nudgeField(editor.FieldClose, +1, display)
	case "m":
		m = m.nudgeSma(-1, display)
	case "M":
		m = m.nudgeSma(+1, display)
	case "e":
		m = m.nudgeEma(-1, display)
	case "E":
		m = m.nudgeEma(+1, display)
	case "u":
		if next, ok := m.session.Undo(m.base); ok {
			m.base = next
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}
	case "U":
		if next, ok := m.session.Redo(m.base); ok {
			m.base = next
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}
	case "g":
		w, h := m.width, m.height
		m = newModel(m.cfg)
		m.width, m.height = w, h
		m.status = "regenerated"
	case "a":
		params := generator.Params{
			StartPrice: m.cfg.StartPrice,
			Drift:      m.cfg.Drift,
			Volatility: m.cfg.Volatility,
			Substeps:   m.cfg.Substeps,
		}
		m.base = generator.Append(m.base, 20, params, rng.NewTimeSeeded())
		m.status = "appended 20 bars"
	}
	return m, nil
}

// followCursor pans the viewport just enough to keep the cursor visible.
func (m chartModel) followCursor(displayLen int) viewport.Viewport {
	vp := m.vp
	if float64(m.cursor) < vp.Start {
		vp.Start = float64(m.cursor)
	}
	if float64(m.cursor) >= vp.Start+float64(vp.Count) {
		vp.Start = float64(m.cursor - vp.Count + 1)
	}
	return vp.Clamp(displayLen)
}

func (m chartModel) setGranularity(g int) chartModel {
	if g == m.gran {
		return m
	}
	oldG := m.gran
	m.gran = g
	display := timeframe.Aggregate(m.base, g)
	m.vp = timeframe.Rescale(m.vp, oldG, g, len(display))
	m.cursor = timeframe.CoarseIndex(m.cursor*oldG, g)
	if m.cursor >= len(display) && len(display) > 0 {
		m.cursor = len(display) - 1
	}
	m.status = fmt.Sprintf("granularity %dx", g)
	return m
}

// tick is the price step of one nudge, scaled to the visible range.
func tick(display []models.Bar) float64 {
	if len(display) == 0 {
		return 0.01
	}
	hi, lo := display[0].High, display[0].Low
	for _, b := range display {
		hi = math.Max(hi, b.High)
		lo = math.Min(lo, b.Low)
	}
	t := (hi - lo) / 100
	if t < 0.01 {
		t = 0.01
	}
	return t
}

func (m chartModel) nudgeField(field editor.Field, dir float64, display []models.Bar) chartModel {
	if m.cursor < 0 || m.cursor >= len(display) {
		return m
	}
	var current float64
	switch field {
	case editor.FieldOpen:
		current = display[m.cursor].Open
	case editor.FieldHigh:
		current = display[m.cursor].High
	case editor.FieldLow:
		current = display[m.cursor].Low
	case editor.FieldClose:
		current = display[m.cursor].Close
	}
	target := current + dir*tick(display)
	m.session.Begin(m.base)
	m.base = m.engine.EditAggregateField(m.base, m.gran, m.cursor, field, target)
	m.session.End()
	m.status = fmt.Sprintf("bar %d -> %.2f", m.cursor, target)
	return m
}

func (m chartModel) nudgeSma(dir float64, display []models.Bar) chartModel {
	sma := indicators.Sma(models.Closes(display), m.calc.SMAPeriod)
	if m.cursor < 0 || m.cursor >= len(sma) || !models.Defined(sma[m.cursor]) {
		m.status = "SMA undefined here"
		return m
	}
	target := sma[m.cursor] + dir*tick(display)
	m.session.Begin(m.base)
	m.base = m.engine.EditSmaPoint(m.base, m.gran, m.calc.SMAPeriod, m.cursor, target)
	m.session.End()
	m.status = fmt.Sprintf("SMA %d -> %.2f", m.cursor, target)
	return m
}

func (m chartModel) nudgeEma(dir float64, display []models.Bar) chartModel {
	ema := indicators.Ema(models.Closes(display), m.calc.EMAPeriod)
	if m.cursor < 0 || m.cursor >= len(ema) || !models.Defined(ema[m.cursor]) {
		m.status = "EMA undefined here"
		return m
	}
	target := ema[m.cursor] + dir*tick(display)
	m.session.Begin(m.base)
	m.base = m.engine.EditEmaPoint(m.base, m.gran, m.calc.EMAPeriod, m.cursor, target)
	m.session.End()
	m.status = fmt.Sprintf("EMA %d -> %.2f", m.cursor, target)
	return m
}

func (m chartModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	display := timeframe.Aggregate(m.base, m.gran)
	vp := m.vp.Clamp(len(display))
	chartW := m.width - 10
	chartH := m.height - 4
	if chartW < 10 || chartH < 5 || len(display) == 0 {
		return "terminal too small"
	}

	first := int(vp.Start)
	last := first + vp.Count
	if last > len(display) {
		last = len(display)
	}
	visible := display[first:last]

	// Price range over the visible window, widened by the SMA overlay.
	sma := indicators.Sma(models.Closes(display), m.calc.SMAPeriod)
	hi, lo := visible[0].High, visible[0].Low
	for _, b := range visible {
		hi = math.Max(hi, b.High)
		lo = math.Min(lo, b.Low)
	}
	for i := first; i < last; i++ {
		if models.Defined(sma[i]) {
			hi = math.Max(hi, sma[i])
			lo = math.Min(lo, sma[i])
		}
	}

	tr := viewport.Transform{
		View:     vp,
		Width:    float64(chartW),
		Height:   float64(chartH),
		PriceMin: lo,
		PriceMax: hi,
	}

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, chartH)
	for y := range grid {
		grid[y] = make([]cell, chartW)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	put := func(x, y int, r rune, st lipgloss.Style) {
		if x >= 0 && x < chartW && y >= 0 && y < chartH {
			grid[y][x] = cell{r: r, style: st}
		}
	}

	for i := first; i < last; i++ {
		b := display[i]
		x := int(tr.IndexToX(i))
		st := upStyle
		if b.Close < b.Open {
			st = downStyle
		}
		if i == m.cursor {
			st = cursorStyle
		}
		yHigh := int(tr.PriceToY(b.High))
		yLow := int(tr.PriceToY(b.Low))
		yTop := int(tr.PriceToY(b.BodyMax()))
		yBot := int(tr.PriceToY(b.BodyMin()))
		for y := yHigh; y <= yLow; y++ {
			put(x, y, '│', st)
		}
		for y := yTop; y <= yBot; y++ {
			put(x, y, '█', st)
		}
	}
	for i := first; i < last; i++ {
		if models.Defined(sma[i]) {
			put(int(tr.IndexToX(i)), int(tr.PriceToY(sma[i])), '·', lineStyle)
		}
	}

	var out string
	for y := 0; y < chartH; y++ {
		price := tr.YToPrice(float64(y))
		row := fmt.Sprintf("%8.2f ", price)
		for x := 0; x < chartW; x++ {
			c := grid[y][x]
			if c.r == ' ' {
				row += " "
			} else {
				row += c.style.Render(string(c.r))
			}
		}
		out += row + "\n"
	}

	out += m.statusLine(display) + "\n"
	out += helpStyle.Render("←/→ move  +/- zoom  1/2/3 timeframe  o/h/l/c & O/H/L/C nudge  m/M SMA  e/E EMA  u undo  U redo  g regen  a append  q quit")
	return out
}

func (m chartModel) statusLine(display []models.Bar) string {
	if m.cursor < 0 || m.cursor >= len(display) {
		return statusStyle.Render(m.status)
	}
	snaps := m.calc.CalculateAll(display)
	b := display[m.cursor]
	s := snaps[m.cursor]
	trend := indicators.TrendDirection(b, s)
	line := fmt.Sprintf(" #%d O:%.2f H:%.2f L:%.2f C:%.2f  RSI:%s MACD:%s  %s  [%s]",
		b.Index, b.Open, b.High, b.Low, b.Close,
		fmtVal(s.RSI), fmtVal(s.MACD), trend, m.status)
	return statusStyle.Render(line)
}

func fmtVal(v float64) string {
	if !models.Defined(v) {
		return "--"
	}
	return fmt.Sprintf("%.2f", v)
}
