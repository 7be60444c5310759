// Package monitor is an interactive terminal view of Hack RAM: watched
// addresses refresh live while the machine runs, and commands dump ranges
// or poke words.
package monitor

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/pcardune/hackvm/pkg/hack"
)

// Monitor drives a tview application over a live RAM.
type Monitor struct {
	ram *hack.RAM

	log   *tview.TextView
	watch *tview.TextView
	input *tview.InputField
	rows  *tview.Flex
	app   *tview.Application

	mu      sync.Mutex
	watches []int
}

// New builds the monitor UI around ram.
func New(ram *hack.RAM) *Monitor {
	m := &Monitor{
		ram: ram,
		log: tview.NewTextView().
			SetMaxLines(1000),
		watch: tview.NewTextView().
			SetWrap(false).
			SetTextAlign(tview.AlignRight),
		input: tview.NewInputField(),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
		app: tview.NewApplication(),
	}
	m.log.SetChangedFunc(func() { m.app.Draw() })
	m.watch.SetBackgroundColor(tcell.ColorDarkBlue)
	m.rows.
		AddItem(tview.NewFlex().
			AddItem(m.watch, 24, 0, false).
			AddItem(m.log, 0, 1, false), 0, 1, false).
		AddItem(m.input, 1, 0, true)
	m.app.SetRoot(m.rows, true)

	m.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		cmd := m.input.GetText()
		if cmd == "" {
			return
		}
		m.input.SetText("")
		if out := m.handle(cmd); out != "" {
			fmt.Fprint(m.log, out)
		}
	})
	return m
}

// handle executes one command line and returns its log output.
//
//	w <addr>           watch a word
//	d <start> <end>    dump [start, end)
//	s <addr> <val>     store a word
//	q                  quit
func (m *Monitor) handle(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "q", "quit", "exit":
		m.app.Stop()
		return ""
	case "w", "watch":
		addr, err := atoiArg(fields, 1)
		if err != nil {
			return err.Error() + "\n"
		}
		if err := m.ram.CheckRange(addr, addr+1); err != nil {
			return err.Error() + "\n"
		}
		m.mu.Lock()
		m.watches = append(m.watches, addr)
		m.mu.Unlock()
		return fmt.Sprintf("watching %d\n", addr)
	case "d", "dump":
		start, err := atoiArg(fields, 1)
		if err != nil {
			return err.Error() + "\n"
		}
		end := start + 1
		if len(fields) > 2 {
			if end, err = atoiArg(fields, 2); err != nil {
				return err.Error() + "\n"
			}
		}
		var b strings.Builder
		if err := hack.Dump(&b, m.ram, start, end); err != nil {
			return err.Error() + "\n"
		}
		return b.String()
	case "s", "set":
		addr, err := atoiArg(fields, 1)
		if err != nil {
			return err.Error() + "\n"
		}
		val, err := atoiArg(fields, 2)
		if err != nil {
			return err.Error() + "\n"
		}
		if err := m.ram.CheckRange(addr, addr+1); err != nil {
			return err.Error() + "\n"
		}
		m.ram.Set(addr, hack.Word(val))
		return fmt.Sprintf("%d:%d\n", addr, val)
	}
	return fmt.Sprintf("unknown command %q\n", fields[0])
}

func atoiArg(fields []string, i int) (int, error) {
	if i >= len(fields) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", fields[i])
	}
	return n, nil
}

// watchContent formats the watched words, newest last.
func (m *Monitor) watchContent() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var b strings.Builder
	for _, addr := range m.watches {
		fmt.Fprintf(&b, "[%5d] %6d\n", addr, m.ram.At(addr))
	}
	return b.String()
}

// Run drives the UI until the user quits, refreshing watches while the
// machine keeps writing RAM.
func (m *Monitor) Run() error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
			content := m.watchContent()
			m.app.QueueUpdateDraw(func() {
				m.watch.SetText(content)
			})
		}
	}()
	return m.app.Run()
}
