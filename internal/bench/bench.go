// Package bench runs a chunk headless and summarizes how it settles.
package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"sand-ca/internal/core"
	"sand-ca/internal/scenario"
)

var lang = language.English

type mover interface {
	Moved() int
}

// Result summarizes a headless run.
type Result struct {
	Sim        string
	Ticks      int
	SettleTick int // -1 when the chunk never came to rest
	Sand       int
	Wall       int
	MovedMean  float64
	MovedStd   float64
	Elapsed    time.Duration
}

// Run resets sim, applies script, then steps it ticks times feeding scripted
// input. progress, when non-nil, is called after every tick.
func Run(sim core.GridSim, script *scenario.Scenario, seed int64, ticks int, progress func()) Result {
	sim.Reset(seed)
	if script != nil {
		script.Apply(sim.Grid())
	}
	handler, _ := sim.(core.InputHandler)
	m, _ := sim.(mover)

	res := Result{Sim: sim.Name(), Ticks: ticks, SettleTick: -1}
	var lastStroke uint64
	if script != nil {
		lastStroke = script.LastTick()
	}
	moved := make([]float64, 0, ticks)

	start := time.Now()
	for tick := 0; tick < ticks; tick++ {
		if script != nil && handler != nil {
			handler.HandleInput(script.InputAt(uint64(tick)))
		}
		sim.Step()
		if m != nil {
			n := m.Moved()
			moved = append(moved, float64(n))
			if n == 0 && res.SettleTick < 0 && uint64(tick) >= lastStroke {
				res.SettleTick = tick
			}
		}
		if progress != nil {
			progress()
		}
	}
	res.Elapsed = time.Since(start)

	res.Sand = sim.Grid().Count(core.CodeSand)
	res.Wall = sim.Grid().Count(core.CodeWall)
	switch {
	case len(moved) > 1:
		res.MovedMean, res.MovedStd = stat.MeanStdDev(moved, nil)
	case len(moved) == 1:
		res.MovedMean = moved[0]
	}
	return res
}

// Table renders the result as a bordered two-column table.
func (r Result) Table() string {
	p := message.NewPrinter(lang)
	settle := "never"
	if r.SettleTick >= 0 {
		settle = p.Sprintf("%d", r.SettleTick)
	}
	tps := 0.0
	if sec := r.Elapsed.Seconds(); sec > 0 {
		tps = float64(r.Ticks) / sec
	}
	keys := []string{"Ticks", "Settled at", "Sand", "Wall", "Moved/tick", "Moved stddev", "Ticks/sec"}
	vals := map[string]string{
		"Ticks":        p.Sprintf("%d", r.Ticks),
		"Settled at":   settle,
		"Sand":         p.Sprintf("%d", r.Sand),
		"Wall":         p.Sprintf("%d", r.Wall),
		"Moved/tick":   p.Sprintf("%.2f", r.MovedMean),
		"Moved stddev": p.Sprintf("%.2f", r.MovedStd),
		"Ticks/sec":    p.Sprintf("%.0f", tps),
	}
	return formatTable(r.Sim, keys, vals)
}

func formatTable(title string, keys []string, vals map[string]string) string {
	keyW, valW := 0, 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
		valW = max(valW, runewidth.StringWidth(vals[k]))
	}
	keyW += 2
	valW += 2
	inner := keyW + 1 + valW
	if tw := runewidth.StringWidth(title); tw > inner {
		valW += tw - inner
		inner = tw
	}

	var b strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"

	left := (inner - runewidth.StringWidth(title)) / 2
	right := inner - runewidth.StringWidth(title) - left
	b.WriteString(top)
	fmt.Fprintf(&b, "|%s%s%s|\n", pad(left), title, pad(right))
	b.WriteString(divider)
	for _, k := range keys {
		v := vals[k]
		fmt.Fprintf(&b, "| %s%s | %s%s |\n", k, pad(keyW-2-runewidth.StringWidth(k)), v, pad(valW-2-runewidth.StringWidth(v)))
	}
	b.WriteString(divider)
	return b.String()
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
