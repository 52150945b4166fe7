package docx

import (
	"log/slog"

	"github.com/tsawler/minidock/model"
)

// Cache memoizes resolved styles for one parse. A Cache is not safe for
// concurrent use; each document gets its own.
type Cache struct {
	resolved map[string]model.Style
	visiting map[string]bool
	cycles   []string
	logger   *slog.Logger
	onCycle  func(styleID string)
}

// NewCache returns an empty cache that logs to slog.Default.
func NewCache() *Cache {
	return newCache(nil, nil)
}

func newCache(logger *slog.Logger, onCycle func(string)) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		resolved: make(map[string]model.Style),
		visiting: make(map[string]bool),
		logger:   logger,
		onCycle:  onCycle,
	}
}

// Len returns the number of memoized styles.
func (c *Cache) Len() int {
	return len(c.resolved)
}

// Cycles returns the style ids at which a basedOn cycle was cut, in the
// order they were found.
func (c *Cache) Cycles() []string {
	out := make([]string, len(c.cycles))
	copy(out, c.cycles)
	return out
}

func (c *Cache) cut(id string) {
	c.logger.Warn("basedOn cycle", "style", id)
	c.cycles = append(c.cycles, id)
	if c.onCycle != nil {
		c.onCycle(id)
	}
}

// Resolve returns the effective style for id: its basedOn ancestors merged
// from the root down, with id's own properties applied last.
//
// An empty id yields the default style without touching the cache. An id
// missing from the table resolves to the default style, which is cached.
// When a basedOn chain loops back on itself the back edge resolves to the
// default style, so resolution always terminates.
//
// A nil cache resolves without memoization.
func Resolve(table StyleTable, cache *Cache, id string) model.Style {
	if id == "" {
		return model.DefaultStyle()
	}
	if cache == nil {
		cache = NewCache()
	}

	if s, ok := cache.resolved[id]; ok {
		return s.Clone()
	}

	def, ok := table[id]
	if !ok {
		cache.resolved[id] = model.DefaultStyle()
		return model.DefaultStyle()
	}

	if cache.visiting[id] {
		cache.cut(id)
		return model.DefaultStyle()
	}
	cache.visiting[id] = true
	defer delete(cache.visiting, id)

	s := Resolve(table, cache, def.BasedOn)
	mergeStyle(&s, def)
	s.ID = id
	s.Name = def.Name
	s.BasedOn = def.BasedOn

	cache.resolved[id] = s.Clone()
	return s
}

// mergeStyle layers src over dst. Flags accumulate; every other field is
// taken from src only when src sets it. Tabs from src follow dst's tabs in
// a freshly allocated slice.
func mergeStyle(dst *model.Style, src model.Style) {
	if src.Kind == model.KindParagraph {
		dst.Kind = model.KindParagraph
	}

	dst.Bold = dst.Bold || src.Bold
	dst.Italic = dst.Italic || src.Italic
	dst.Underline = dst.Underline || src.Underline
	dst.Strike = dst.Strike || src.Strike
	dst.Subscript = dst.Subscript || src.Subscript
	dst.Superscript = dst.Superscript || src.Superscript
	dst.Numbered = dst.Numbered || src.Numbered
	dst.SpaceBetweenSameStyle = dst.SpaceBetweenSameStyle || src.SpaceBetweenSameStyle
	dst.RightDirection = dst.RightDirection || src.RightDirection

	if !src.Color.IsDefault() {
		dst.Color = src.Color
	}
	if !src.BackColor.IsDefault() {
		dst.BackColor = src.BackColor
	}

	setString(&dst.FontFamily, src.FontFamily)
	setString(&dst.Lang, src.Lang)
	setString(&dst.NumberFormat, src.NumberFormat)
	setString(&dst.NumberStyle, src.NumberStyle)

	setPositive(&dst.FontSize, src.FontSize)
	setPositive(&dst.LineSpacing, src.LineSpacing)
	setPositive(&dst.SpaceBefore, src.SpaceBefore)
	setPositive(&dst.SpaceAfter, src.SpaceAfter)
	setPositive(&dst.IndentLeft, src.IndentLeft)
	setPositive(&dst.IndentRight, src.IndentRight)
	setPositive(&dst.IndentFirstLine, src.IndentFirstLine)
	if src.Level > 0 {
		dst.Level = src.Level
	}

	if src.Justification != model.JustifyLeft {
		dst.Justification = src.Justification
	}

	if len(src.Tabs) > 0 {
		tabs := make([]model.Tab, 0, len(dst.Tabs)+len(src.Tabs))
		tabs = append(tabs, dst.Tabs...)
		dst.Tabs = append(tabs, src.Tabs...)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
