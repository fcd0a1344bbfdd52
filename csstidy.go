// Package csstidy holds the stylesheet model shared by the CSS optimiser and its parser and printer
// collaborators, together with the value helpers that all of them need.
package csstidy

import (
	"github.com/elliotchance/orderedmap/v3"
)

// DefaultMedium is the medium of rule sets that are not nested in an at-rule.
const DefaultMedium = ""

// Declaration maps lower-cased property names to values in insertion order.
type Declaration struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewDeclaration returns an empty declaration.
func NewDeclaration() *Declaration {
	return &Declaration{orderedmap.NewOrderedMap[string, string]()}
}

// Len returns the number of properties.
func (d *Declaration) Len() int {
	return d.m.Len()
}

// Get returns the value of a property.
func (d *Declaration) Get(property string) (string, bool) {
	return d.m.Get(property)
}

// Has returns true if the property is set.
func (d *Declaration) Has(property string) bool {
	_, ok := d.m.Get(property)
	return ok
}

// Set sets the value of a property, an existing property keeps its position.
func (d *Declaration) Set(property, value string) {
	d.m.Set(property, value)
}

// Delete removes a property.
func (d *Declaration) Delete(property string) {
	d.m.Delete(property)
}

// Add adds a property the way a cascade within a single rule set would: a value without importance
// marker never overrides an important value, and an overridden property moves to the end.
func (d *Declaration) Add(property, value string) bool {
	if old, ok := d.m.Get(property); ok {
		if IsImportant(old) && !IsImportant(value) {
			return false
		}
		d.m.Delete(property)
	}
	d.m.Set(property, value)
	return true
}

// Merge adds all properties of o using Add.
func (d *Declaration) Merge(o *Declaration) {
	for el := o.m.Front(); el != nil; el = el.Next() {
		d.Add(el.Key, el.Value)
	}
}

// Properties returns the property names in order.
func (d *Declaration) Properties() []string {
	props := make([]string, 0, d.m.Len())
	for el := d.m.Front(); el != nil; el = el.Next() {
		props = append(props, el.Key)
	}
	return props
}

// Each calls f for every property in order. The declaration must not be modified by f.
func (d *Declaration) Each(f func(property, value string)) {
	for el := d.m.Front(); el != nil; el = el.Next() {
		f(el.Key, el.Value)
	}
}

// Copy returns a shallow copy.
func (d *Declaration) Copy() *Declaration {
	return &Declaration{d.m.Copy()}
}

// Equal returns true if both declarations hold the same properties with the same values, regardless of order.
func (d *Declaration) Equal(o *Declaration) bool {
	if d.m.Len() != o.m.Len() {
		return false
	}
	for el := d.m.Front(); el != nil; el = el.Next() {
		if v, ok := o.m.Get(el.Key); !ok || v != el.Value {
			return false
		}
	}
	return true
}

////////////////////////////////////////////////////////////////

// RuleSet maps selectors to their declarations in insertion order.
type RuleSet struct {
	m *orderedmap.OrderedMap[string, *Declaration]
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{orderedmap.NewOrderedMap[string, *Declaration]()}
}

func (rs *RuleSet) Len() int {
	return rs.m.Len()
}

func (rs *RuleSet) Get(selector string) (*Declaration, bool) {
	return rs.m.Get(selector)
}

func (rs *RuleSet) Set(selector string, decl *Declaration) {
	rs.m.Set(selector, decl)
}

func (rs *RuleSet) Delete(selector string) {
	rs.m.Delete(selector)
}

// Declaration returns the declaration of selector, creating it when missing.
func (rs *RuleSet) Declaration(selector string) *Declaration {
	if decl, ok := rs.m.Get(selector); ok {
		return decl
	}
	decl := NewDeclaration()
	rs.m.Set(selector, decl)
	return decl
}

// Selectors returns the selectors in order. The returned slice is a snapshot.
func (rs *RuleSet) Selectors() []string {
	sels := make([]string, 0, rs.m.Len())
	for el := rs.m.Front(); el != nil; el = el.Next() {
		sels = append(sels, el.Key)
	}
	return sels
}

// Copy returns a copy that shares the declarations.
func (rs *RuleSet) Copy() *RuleSet {
	return &RuleSet{rs.m.Copy()}
}

////////////////////////////////////////////////////////////////

// Stylesheet maps media to rule sets. Imports holds at-rules without a block, such as @charset and @import,
// that are passed through unmodified.
type Stylesheet struct {
	Imports []string

	m *orderedmap.OrderedMap[string, *RuleSet]
}

// NewStylesheet returns an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{m: orderedmap.NewOrderedMap[string, *RuleSet]()}
}

func (s *Stylesheet) Len() int {
	return s.m.Len()
}

func (s *Stylesheet) Get(medium string) (*RuleSet, bool) {
	return s.m.Get(medium)
}

func (s *Stylesheet) Set(medium string, rs *RuleSet) {
	s.m.Set(medium, rs)
}

func (s *Stylesheet) Delete(medium string) {
	s.m.Delete(medium)
}

// RuleSet returns the rule set of medium, creating it when missing.
func (s *Stylesheet) RuleSet(medium string) *RuleSet {
	if rs, ok := s.m.Get(medium); ok {
		return rs
	}
	rs := NewRuleSet()
	s.m.Set(medium, rs)
	return rs
}

// Media returns the media in order. The returned slice is a snapshot.
func (s *Stylesheet) Media() []string {
	media := make([]string, 0, s.m.Len())
	for el := s.m.Front(); el != nil; el = el.Next() {
		media = append(media, el.Key)
	}
	return media
}
