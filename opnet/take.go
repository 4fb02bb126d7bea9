package opnet

import (
	"github.com/pkg/errors"
)

// Take is a named time-context: an alternate set of channel values.
type Take struct {
	name string
}

func (t *Take) Name() string { return t.name }

type TakeManager struct {
	takes   []*Take
	current *Take
}

func NewTakeManager() *TakeManager {
	m := &TakeManager{}
	// the host always has a root take
	m.current = m.AddTake("Main")
	return m
}

func (m *TakeManager) Takes() []*Take { return m.takes }

func (m *TakeManager) Take(name string) *Take {
	for _, t := range m.takes {
		if t.name == name {
			return t
		}
	}
	return nil
}

func (m *TakeManager) AddTake(name string) *Take {
	if t := m.Take(name); t != nil {
		return t
	}
	t := &Take{name: name}
	m.takes = append(m.takes, t)
	return t
}

func (m *TakeManager) Current() *Take { return m.current }

func (m *TakeManager) SetCurrent(name string) error {
	t := m.Take(name)
	if t == nil {
		return errors.Errorf("no such take %q", name)
	}
	m.current = t
	return nil
}
