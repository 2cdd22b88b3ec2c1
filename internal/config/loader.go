package config

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
	"github.com/alexisbeaulieu97/stylekit/pkg/theme"
)

// Loader reads theme documents and turns them into themes.
type Loader struct {
	log *logger.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// Load parses the document at path and builds its theme.
func (l *Loader) Load(path string) (*theme.Theme, error) {
	l.log.WithFields(map[string]any{"path": path}).Debug("loading theme document")

	doc, err := ParseFile(path)
	if err != nil {
		l.log.WithFields(map[string]any{"path": path}).Error(err, "failed to parse theme document")
		return nil, err
	}

	th, err := l.Build(doc)
	if err != nil {
		return nil, err
	}

	l.log.WithFields(map[string]any{"path": path, "components": len(th.Components)}).Info("theme loaded")
	return th, nil
}

// Build converts a validated document into a theme. Components keep
// document order. Selectors the CSS selector parser rejects are logged and
// kept: the emitter never interprets them.
func (l *Loader) Build(doc *Document) (*theme.Theme, error) {
	th := &theme.Theme{Name: doc.Name, Components: make([]theme.Component, 0, len(doc.Components))}

	var errs error
	for i, c := range doc.Components {
		opts := theme.ComponentOptions{Selector: strings.TrimSpace(c.Selector)}
		l.checkSelector(c.Name, opts.Selector)

		for _, name := range sortedSlotNames(c.Slots) {
			slot := c.Slots[name]
			v, err := slot.Value()
			if err == nil {
				err = opts.Set(name, v)
			}
			if err != nil {
				errs = multierr.Append(errs, apperrors.NewValidationError(fieldForSlot(i, name), err.Error(), err))
				continue
			}
			if sel, ok := v.Selector(); ok && !v.IsAbsolute() {
				l.checkSelector(c.Name, theme.ResolveSelector(opts.Selector, sel, false))
			} else if ok {
				l.checkSelector(c.Name, sel)
			}
		}

		th.Components = append(th.Components, theme.Component{Name: c.Name, Options: opts})
	}

	if errs != nil {
		return nil, errs
	}
	return th, nil
}

func (l *Loader) checkSelector(component, selector string) {
	if _, err := cascadia.Compile(selector); err != nil {
		l.log.WithFields(map[string]any{"component": component, "selector": selector}).
			Warn("selector is not valid CSS: " + err.Error())
	}
}

// Load is a convenience wrapper around NewLoader(nil).Load.
func Load(path string) (*theme.Theme, error) {
	return NewLoader(nil).Load(path)
}
