package testutil

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/skiff-sh/scaffold/pkg/collection"
)

type TeaWaitCond = func(b []byte) bool

func WaitFormDone(f *huh.Form) TeaWaitCond {
	return func(b []byte) bool {
		return f.State != huh.StateNormal
	}
}

func WaitRenderContains(s string) TeaWaitCond {
	return func(b []byte) bool {
		return strings.Contains(string(b), s)
	}
}

// TeaInputs key presses sent to a program in order.
type TeaInputs []tea.KeyMsg

// SendTo sends all inputs to the program, sleeping timeBetween before each one
// so the form has time to process updates.
func (t TeaInputs) SendTo(prog teatest.Program, timeBetween time.Duration) {
	for _, v := range t {
		if timeBetween > 0 {
			time.Sleep(timeBetween)
		}
		prog.Send(v)
	}
}

// Inputs builds TeaInputs from strings (typed as runes) and tea.KeyType
// values. Anything else is ignored.
func Inputs(t ...any) TeaInputs {
	out := make(TeaInputs, 0, len(t))
	for _, v := range t {
		switch typ := v.(type) {
		case string:
			out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(typ)})
		case tea.KeyType:
			out = append(out, tea.KeyMsg{Type: typ})
		}
	}

	return out
}

// Keys names of the inputs, handy for failure output.
func (t TeaInputs) Keys() []string {
	return collection.Map(t, func(e tea.KeyMsg) string {
		return e.String()
	})
}
