// Package css optimises CSS stylesheets: it normalizes values, compacts colors and numbers, dissolves and merges
// shorthands and merges or discards selectors.
package css

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/csstidy"
)

// Optimiser applies the optimisations enabled in its configuration. It keeps no state between calls and may be
// used from multiple goroutines as long as its logger is safe for concurrent use.
type Optimiser struct {
	config csstidy.Config
	tables *Tables
	log    csstidy.Logger
}

// New returns an optimiser using DefaultTables. A nil log discards all records.
func New(config csstidy.Config, log csstidy.Logger) *Optimiser {
	return NewWithTables(config, DefaultTables, log)
}

// NewWithTables returns an optimiser using the given tables.
func NewWithTables(config csstidy.Config, tables *Tables, log csstidy.Logger) *Optimiser {
	if log == nil {
		log = csstidy.NopLogger{}
	}
	if tables == nil {
		tables = DefaultTables
	}
	return &Optimiser{
		config: config,
		tables: tables,
		log:    log,
	}
}

// Config returns the options of the optimiser.
func (o *Optimiser) Config() csstidy.Config {
	return o.config
}

// Tidy parses a stylesheet from r, optimises it and writes it to w.
func (o *Optimiser) Tidy(w io.Writer, r io.Reader) error {
	sheet, err := Parse(r, o)
	if err != nil {
		return err
	}
	o.Postparse(sheet)
	return Write(w, sheet)
}

// Property adds a parsed property to decl. The value is normalized, and with shorthand optimisation enabled box
// shorthands are dissolved into their longhands, as is background on level 2. Properties already set in decl are
// replaced unless they are important and the new value is not.
func (o *Optimiser) Property(decl *csstidy.Declaration, property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	if o.config.PreserveCSS {
		decl.Add(property, value)
		return
	}

	value = o.Value(property, value)
	decl.Add(property, value)
	if o.config.OptimiseShorthands == 0 {
		return
	}

	if property == "background" && 1 < o.config.OptimiseShorthands {
		decl.Delete(property)
		decl.Merge(o.tables.DissolveBackground(value))
		return
	}
	if _, ok := o.tables.Longhands(property); ok {
		longhands := o.tables.DissolveBox(property, value)
		if longhands.Has(property) {
			return
		}
		decl.Delete(property)
		decl.Merge(longhands)
	}
}

// Postparse optimises a parsed stylesheet in place. Per medium, invalid selectors are discarded, rules with equal
// declarations are merged, values are normalized, box longhands are merged into their shorthands and, on level 2,
// background longhands are merged and rules that end up empty are removed. A second call applies no rewrites.
func (o *Optimiser) Postparse(sheet *csstidy.Stylesheet) {
	if o.config.PreserveCSS {
		return
	}

	for _, medium := range sheet.Media() {
		rs, _ := sheet.Get(medium)
		if o.config.DiscardInvalidSelectors {
			valid := DiscardInvalidSelectors(rs)
			for _, selector := range rs.Selectors() {
				if _, ok := valid.Get(selector); !ok {
					o.log.Log(fmt.Sprintf("Removed invalid selector: %s", selector), csstidy.Warning)
				}
			}
			rs = valid
		}
		if o.config.MergeSelectors == 1 {
			merged := MergeSelectors(rs)
			for _, selector := range merged.Selectors() {
				if _, ok := rs.Get(selector); !ok {
					o.log.Log(fmt.Sprintf("Merged selectors: %s", selector), csstidy.Information)
				}
			}
			rs = merged
		}
		sheet.Set(medium, o.RuleSet(rs))
	}
}

// RuleSet returns the optimised rules of rs. It does not merge or discard selectors.
func (o *Optimiser) RuleSet(rs *csstidy.RuleSet) *csstidy.RuleSet {
	optimised := csstidy.NewRuleSet()
	for _, selector := range rs.Selectors() {
		decl, _ := rs.Get(selector)
		decl = o.Declaration(decl)
		if 1 < o.config.OptimiseShorthands && decl.Len() == 0 {
			continue
		}
		optimised.Set(selector, decl)
	}
	return optimised
}

// Declaration returns a copy of decl with normalized values and merged shorthands.
func (o *Optimiser) Declaration(decl *csstidy.Declaration) *csstidy.Declaration {
	optimised := csstidy.NewDeclaration()
	decl.Each(func(property, value string) {
		optimised.Set(property, o.Value(property, value))
	})

	if 0 < o.config.OptimiseShorthands {
		for _, shorthand := range o.tables.MergeBox(optimised) {
			value, _ := optimised.Get(shorthand)
			o.log.Log(fmt.Sprintf("Merged longhands into %s: %s", shorthand, value), csstidy.Information)
		}
	}
	if 1 < o.config.OptimiseShorthands {
		if o.tables.MergeBackground(optimised) {
			value, _ := optimised.Get("background")
			o.log.Log(fmt.Sprintf("Merged background longhands: %s", value), csstidy.Information)
		}
	}
	return optimised
}
