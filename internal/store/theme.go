package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"tableside/internal/domain"
	"tableside/internal/storage"
)

var ErrUnknownMode = errors.New("unknown theme mode")

// SystemPreference reports the ambient dark-mode preference and notifies on
// changes.
type SystemPreference interface {
	PrefersDark() bool
	OnChange(func())
}

// ThemeApplier is the single boundary through which resolved theme state
// reaches the presentation layer. Nothing else mutates ambient style state.
type ThemeApplier interface {
	Apply(state domain.ThemeState)
}

// Theme resolves the selected mode plus optional palette override into
// applied visual state. With mode "system" the variant is derived from the
// preference source at every read.
type Theme struct {
	mu        sync.Mutex
	key       string
	snapshots storage.SnapshotStore
	system    SystemPreference
	applier   ThemeApplier

	mode   domain.ThemeMode
	colors map[string]string
}

type themeSnapshot struct {
	Mode   domain.ThemeMode  `json:"mode"`
	Colors map[string]string `json:"colors,omitempty"`
}

func NewTheme(key string, snapshots storage.SnapshotStore, system SystemPreference, applier ThemeApplier) *Theme {
	t := &Theme{
		key:       key,
		snapshots: snapshots,
		system:    system,
		applier:   applier,
		mode:      domain.ThemeModeSystem,
	}
	t.restore()
	system.OnChange(t.reapply)
	t.apply()
	return t
}

func (t *Theme) SetMode(mode domain.ThemeMode) error {
	switch mode {
	case domain.ThemeModeLight, domain.ThemeModeDark, domain.ThemeModeSystem:
	default:
		return ErrUnknownMode
	}

	t.mu.Lock()
	t.mode = mode
	t.persist()
	t.mu.Unlock()

	t.apply()
	return nil
}

func (t *Theme) SetCustomPalette(colors map[string]string) {
	copied := make(map[string]string, len(colors))
	for k, v := range colors {
		copied[k] = v
	}

	t.mu.Lock()
	t.colors = copied
	t.persist()
	t.mu.Unlock()

	t.apply()
}

func (t *Theme) ClearCustomPalette() {
	t.mu.Lock()
	t.colors = nil
	t.persist()
	t.mu.Unlock()

	t.apply()
}

func (t *Theme) IsDark() bool {
	return t.State().Dark
}

// State resolves the effective theme. The system preference is consulted at
// read time, never cached.
func (t *Theme) State() domain.ThemeState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Theme) stateLocked() domain.ThemeState {
	dark := t.mode == domain.ThemeModeDark
	if t.mode == domain.ThemeModeSystem {
		dark = t.system.PrefersDark()
	}
	variant := domain.ThemeVariantLight
	if dark {
		variant = domain.ThemeVariantDark
	}
	var colors map[string]string
	if len(t.colors) > 0 {
		colors = make(map[string]string, len(t.colors))
		for k, v := range t.colors {
			colors[k] = v
		}
	}
	return domain.ThemeState{Mode: t.mode, Variant: variant, CustomColors: colors, Dark: dark}
}

func (t *Theme) apply() {
	if t.applier == nil {
		return
	}
	t.applier.Apply(t.State())
}

func (t *Theme) reapply() {
	t.apply()
}

// persist stores the selected mode and palette only; the variant is derived.
// Callers hold the mutex.
func (t *Theme) persist() {
	payload, err := json.Marshal(themeSnapshot{Mode: t.mode, Colors: t.colors})
	if err != nil {
		log.Printf("[%s] failed to serialize snapshot: %v", t.key, err)
		return
	}
	if err := t.snapshots.Save(context.Background(), t.key, payload); err != nil {
		log.Printf("[%s] failed to save snapshot: %v", t.key, err)
	}
}

func (t *Theme) restore() {
	blob, err := t.snapshots.Load(context.Background(), t.key)
	if err != nil {
		return
	}
	var snap themeSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Printf("[%s] corrupt snapshot, using defaults: %v", t.key, err)
		return
	}
	switch snap.Mode {
	case domain.ThemeModeLight, domain.ThemeModeDark, domain.ThemeModeSystem:
		t.mode = snap.Mode
	}
	t.colors = snap.Colors
}

// StaticPreference is a SystemPreference with a settable value, used by main
// (environment-driven) and by tests.
type StaticPreference struct {
	mu        sync.Mutex
	dark      bool
	listeners []func()
}

func NewStaticPreference(dark bool) *StaticPreference {
	return &StaticPreference{dark: dark}
}

func (p *StaticPreference) PrefersDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dark
}

func (p *StaticPreference) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *StaticPreference) Set(dark bool) {
	p.mu.Lock()
	p.dark = dark
	listeners := make([]func(), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// LogApplier records applied theme state in the service log. It is the
// ambient-effect stand-in for a real presentation layer.
type LogApplier struct{}

func (LogApplier) Apply(state domain.ThemeState) {
	log.Printf("[theme] applied mode=%s variant=%s custom_colors=%d", state.Mode, state.Variant, len(state.CustomColors))
}
