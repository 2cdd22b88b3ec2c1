package classmerge

import (
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Option configures a Merger.
type Option func(*Merger)

// WithLogger routes debug events about dropped tokens to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Merger) {
		m.logger = logger
	}
}

// WithRules replaces the grouping table.
func WithRules(rules []GroupRule) Option {
	return func(m *Merger) {
		m.rules = rules
	}
}

// Merger resolves conflicts between class tokens gathered from several
// sources. For tokens in the same utility group the last one wins; tokens
// without a group always pass through. A Merger is safe for concurrent use.
type Merger struct {
	rules  []GroupRule
	logger zerolog.Logger

	// token -> group ("" when ungrouped); memoises a pure function
	cache sync.Map
}

// New creates a Merger using DefaultRules unless overridden.
func New(opts ...Option) *Merger {
	m := &Merger{
		rules:  DefaultRules(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMerger = New()

// Merge merges class strings with the shared default Merger.
func Merge(classes ...string) string {
	return defaultMerger.Merge(classes...)
}

// MergeSources merges token arrays with the shared default Merger.
func MergeSources(sources ...[]string) string {
	return defaultMerger.MergeSources(sources...)
}

// Group returns the utility group of token, if any.
func (m *Merger) Group(token string) (string, bool) {
	if cached, ok := m.cache.Load(token); ok {
		g := cached.(string)
		return g, g != ""
	}
	group := ""
	for _, rule := range m.rules {
		if g, ok := rule.Match(token); ok {
			group = g
			break
		}
	}
	m.cache.Store(token, group)
	return group, group != ""
}

// Merge treats each argument as one source of space separated tokens, in
// increasing precedence, and returns the surviving tokens space joined.
func (m *Merger) Merge(classes ...string) string {
	return m.MergeSources(classes)
}

type placed struct {
	token string
	group string
	index int
}

// Drop records a token removed by a merge.
type Drop struct {
	Token string
	// Group is empty for unsafe tokens.
	Group string
	// Winner is the token that superseded this one; empty for unsafe tokens.
	Winner string
}

// Report is the full outcome of a merge.
type Report struct {
	Kept    []string
	Dropped []Drop
}

// Merged returns the kept tokens space joined.
func (r Report) Merged() string {
	return strings.Join(r.Kept, " ")
}

// MergeSources concatenates the sources in order and resolves conflicts.
// Unsafe tokens are dropped silently; the survivors keep their relative order.
func (m *Merger) MergeSources(sources ...[]string) string {
	return m.Resolve(sources...).Merged()
}

// Resolve merges like MergeSources and reports what was dropped and why.
// Dropped tokens are listed in input order.
func (m *Merger) Resolve(sources ...[]string) Report {
	var (
		index     int
		winners   = make(map[string]placed)
		ungrouped []placed
		losers    []placed
	)
	for _, source := range sources {
		for _, raw := range source {
			for _, token := range strings.Fields(raw) {
				p := placed{token: token, index: index}
				index++
				if !Sanitize(token) {
					m.logger.Debug().Str("token", truncate(token)).Msg("dropping unsafe class token")
					losers = append(losers, p)
					continue
				}
				group, ok := m.Group(token)
				if !ok {
					ungrouped = append(ungrouped, p)
					continue
				}
				p.group = group
				if prev, seen := winners[group]; seen {
					m.logger.Debug().
						Str("group", group).
						Str("dropped", prev.token).
						Str("winner", token).
						Msg("class token superseded")
					losers = append(losers, prev)
				}
				winners[group] = p
			}
		}
	}

	survivors := make([]placed, 0, len(winners)+len(ungrouped))
	for _, p := range winners {
		survivors = append(survivors, p)
	}
	survivors = append(survivors, ungrouped...)
	byIndex(survivors)
	byIndex(losers)

	report := Report{Kept: make([]string, len(survivors))}
	for i, p := range survivors {
		report.Kept[i] = p.token
	}
	for _, p := range losers {
		d := Drop{Token: p.token, Group: p.group}
		if p.group != "" {
			d.Winner = winners[p.group].token
		}
		report.Dropped = append(report.Dropped, d)
	}
	return report
}

func byIndex(ps []placed) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].index < ps[j].index })
}

func truncate(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
