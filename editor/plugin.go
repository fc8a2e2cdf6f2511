package editor

import (
	"github.com/neronapier/jpoffice/docops"
	"github.com/neronapier/jpoffice/doctree"
)

// Plugin is the lifecycle interface plugins implement, per spec.md
// §4.G: only Initialize is required, everything else is optional and
// guarded with an interface check at dispatch time, the way the teacher
// library treats optional PDF dictionary entries as absent rather than
// erroring.
type Plugin interface {
	ID() string
	Name() string
	Initialize(e *Editor)
}

// BeforeApplyPlugin is implemented by plugins that want to inspect or
// rewrite an operation list before it is applied. Returning an empty
// slice cancels the whole apply call.
type BeforeApplyPlugin interface {
	OnBeforeApply(e *Editor, ops []docops.Operation) []docops.Operation
}

// AfterApplyPlugin is implemented by plugins that want to observe the
// operation list that was actually applied.
type AfterApplyPlugin interface {
	OnAfterApply(e *Editor, ops []docops.Operation)
}

// NormalizePlugin is implemented by plugins that contribute additional
// normalization rules beyond docops' built-in five.
type NormalizePlugin interface {
	Normalize(doc *doctree.Document) []docops.Operation
}

// ResettablePlugin is implemented by plugins that need to clear
// internal state when the editor's document is replaced wholesale.
type ResettablePlugin interface {
	Reset()
}

// DestroyablePlugin is implemented by plugins that hold external
// resources (timers, subscriptions) released on unregistration.
type DestroyablePlugin interface {
	Destroy()
}

// pluginManager stores registered plugins in registration order and
// dispatches lifecycle hooks sequentially, short-circuiting
// beforeApply on an empty return (spec.md §4.G).
type pluginManager struct {
	order []string
	byID  map[string]Plugin
}

func newPluginManager() *pluginManager {
	return &pluginManager{byID: make(map[string]Plugin)}
}

func (m *pluginManager) register(p Plugin) {
	if _, exists := m.byID[p.ID()]; !exists {
		m.order = append(m.order, p.ID())
	}
	m.byID[p.ID()] = p
}

func (m *pluginManager) unregister(id string) {
	if p, ok := m.byID[id]; ok {
		if d, ok := p.(DestroyablePlugin); ok {
			d.Destroy()
		}
		delete(m.byID, id)
		for i, existing := range m.order {
			if existing == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

func (m *pluginManager) get(id string) (Plugin, bool) {
	p, ok := m.byID[id]
	return p, ok
}

// beforeApply runs the beforeApply chain in registration order. An
// empty returned slice from any plugin cancels the apply.
func (m *pluginManager) beforeApply(e *Editor, ops []docops.Operation) ([]docops.Operation, bool) {
	for _, id := range m.order {
		p, ok := m.byID[id].(BeforeApplyPlugin)
		if !ok {
			continue
		}
		ops = p.OnBeforeApply(e, ops)
		if len(ops) == 0 {
			return nil, false
		}
	}
	return ops, true
}

func (m *pluginManager) afterApply(e *Editor, ops []docops.Operation) {
	for _, id := range m.order {
		if p, ok := m.byID[id].(AfterApplyPlugin); ok {
			p.OnAfterApply(e, ops)
		}
	}
}

func (m *pluginManager) resetAll() {
	for _, id := range m.order {
		if p, ok := m.byID[id].(ResettablePlugin); ok {
			p.Reset()
		}
	}
}
