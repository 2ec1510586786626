// Package animation defines the named motion presets shared by the site's
// components. Components reference a preset through data attributes; the
// presets are turned into a stylesheet and the client script adds the
// visible class once an element scrolls into view.
package animation

import (
	"slices"
	"time"
)

// Easing is a CSS timing function.
type Easing string

const (
	EaseOut   Easing = "ease-out"
	EaseInOut Easing = "ease-in-out"
	Linear    Easing = "linear"
	// HeroCurve overshoots slightly before settling.
	HeroCurve Easing = "cubic-bezier(0.6, -0.05, 0.01, 0.99)"
)

// Preset names as used in data-animate attributes.
const (
	FadeInUp         = "fade-in-up"
	FadeInDown       = "fade-in-down"
	FadeInLeft       = "fade-in-left"
	FadeInRight      = "fade-in-right"
	ScaleIn          = "scale-in"
	StaggerContainer = "stagger"
	GlassCard        = "glass-card"
	HeroText         = "hero-text"
	SplitSection     = "split-section"
	GlowPulse        = "glow-pulse"
)

// State is a visual pose. Zero X, Y and Blur mean no offset; Scale 0 means 1.
type State struct {
	Opacity float64
	X       float64 // px
	Y       float64 // px
	Scale   float64
	Blur    float64 // px
}

// Transition describes how a preset moves between states.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
	// Stagger and DelayChildren apply to children of a container preset.
	Stagger       time.Duration
	DelayChildren time.Duration
}

// Preset is a named hidden -> visible animation.
type Preset struct {
	Name       string
	Hidden     State
	Visible    State
	Transition Transition
	// Hover, when set, is applied on pointer hover with HoverDuration.
	Hover         *State
	HoverDuration time.Duration
	// Keyframes names a looping CSS animation instead of a reveal.
	Keyframes string
	Loop      time.Duration
}

var presets = map[string]Preset{
	FadeInUp: {
		Name:       FadeInUp,
		Hidden:     State{Y: 30},
		Visible:    State{Opacity: 1},
		Transition: Transition{Duration: 600 * time.Millisecond, Easing: EaseOut},
	},
	FadeInDown: {
		Name:       FadeInDown,
		Hidden:     State{Y: -30},
		Visible:    State{Opacity: 1},
		Transition: Transition{Duration: 600 * time.Millisecond, Easing: EaseOut},
	},
	FadeInLeft: {
		Name:       FadeInLeft,
		Hidden:     State{X: -50},
		Visible:    State{Opacity: 1},
		Transition: Transition{Duration: 600 * time.Millisecond, Easing: EaseOut},
	},
	FadeInRight: {
		Name:       FadeInRight,
		Hidden:     State{X: 50},
		Visible:    State{Opacity: 1},
		Transition: Transition{Duration: 600 * time.Millisecond, Easing: EaseOut},
	},
	ScaleIn: {
		Name:       ScaleIn,
		Hidden:     State{Scale: 0.8},
		Visible:    State{Opacity: 1, Scale: 1},
		Transition: Transition{Duration: 500 * time.Millisecond, Easing: EaseOut},
	},
	StaggerContainer: {
		Name:    StaggerContainer,
		Hidden:  State{Opacity: 1},
		Visible: State{Opacity: 1},
		Transition: Transition{
			Stagger:       100 * time.Millisecond,
			DelayChildren: 300 * time.Millisecond,
		},
	},
	GlassCard: {
		Name:          GlassCard,
		Hidden:        State{Y: 20},
		Visible:       State{Opacity: 1, Blur: 12},
		Transition:    Transition{Duration: 600 * time.Millisecond, Easing: EaseOut},
		Hover:         &State{Opacity: 1, Y: -5, Blur: 12},
		HoverDuration: 300 * time.Millisecond,
	},
	HeroText: {
		Name:       HeroText,
		Hidden:     State{Y: 50},
		Visible:    State{Opacity: 1},
		Transition: Transition{Duration: 800 * time.Millisecond, Easing: HeroCurve},
	},
	SplitSection: {
		Name:    SplitSection,
		Hidden:  State{},
		Visible: State{Opacity: 1},
		Transition: Transition{
			Duration: 800 * time.Millisecond,
			Easing:   EaseOut,
			Stagger:  200 * time.Millisecond,
		},
	},
	GlowPulse: {
		Name:      GlowPulse,
		Hidden:    State{Opacity: 1},
		Visible:   State{Opacity: 1},
		Keyframes: "glow-pulse",
		Loop:      2 * time.Second,
		Transition: Transition{
			Easing: EaseInOut,
		},
	},
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]

	return p, ok
}

// Names returns every preset name, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

// ChildDelay is the reveal delay of the index-th child of a container preset.
func (p Preset) ChildDelay(index int) time.Duration {
	if index < 0 {
		index = 0
	}

	return p.Transition.DelayChildren + time.Duration(index)*p.Transition.Stagger
}

// Reveal configures the client-side scroll observer.
type Reveal struct {
	Duration  time.Duration
	Easing    Easing
	Once      bool
	Offset    int     // px before the element enters the viewport
	Threshold float64 // visible fraction that triggers the reveal
}

// DefaultReveal matches the site-wide scroll animation settings.
func DefaultReveal() Reveal {
	return Reveal{
		Duration:  800 * time.Millisecond,
		Easing:    EaseOut,
		Once:      true,
		Offset:    100,
		Threshold: 0.1,
	}
}

// Timings used by individual components.
const (
	PreloaderDuration     = 2 * time.Second
	CountUpDuration       = 2500 * time.Millisecond
	CountUpThreshold      = 0.3
	HeaderScrollThreshold = 20 // px scrolled before the header turns solid
	ParallaxOffset        = 30 // px
	TypedWordInterval     = 2 * time.Second
)

// MarqueeDurations are the loop lengths of the two client logo rows.
var MarqueeDurations = [2]time.Duration{20 * time.Second, 25 * time.Second}
