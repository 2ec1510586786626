package animation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	p, ok := Lookup(FadeInUp)
	require.True(t, ok)
	assert.Equal(t, 30.0, p.Hidden.Y)
	assert.Equal(t, 600*time.Millisecond, p.Transition.Duration)
	assert.Equal(t, EaseOut, p.Transition.Easing)

	p, ok = Lookup(HeroText)
	require.True(t, ok)
	assert.Equal(t, HeroCurve, p.Transition.Easing)

	_, ok = Lookup("spin-forever")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Len(t, names, 10)
	assert.IsIncreasing(t, names)
}

func TestChildDelay(t *testing.T) {
	p, _ := Lookup(StaggerContainer)

	assert.Equal(t, 300*time.Millisecond, p.ChildDelay(0))
	assert.Equal(t, 500*time.Millisecond, p.ChildDelay(2))
	assert.Equal(t, 300*time.Millisecond, p.ChildDelay(-3))
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, FadeInUp, Attrs(FadeInUp)["data-animate"])
	assert.Empty(t, Attrs("unknown"))

	child := Child(StaggerContainer, FadeInUp, 1)
	assert.Equal(t, FadeInUp, child["data-animate"])
	assert.Equal(t, "--motion-delay:0.4s", child["style"])

	assert.NotContains(t, Delayed(ScaleIn, 0), "style")
	assert.Equal(t, Attrs(FadeInLeft), Child("nope", FadeInLeft, 3))
}

func TestRevealAttrs(t *testing.T) {
	attrs := RevealAttrs(DefaultReveal())

	assert.Equal(t, "800", attrs["data-reveal-duration"])
	assert.Equal(t, "true", attrs["data-reveal-once"])
	assert.Equal(t, "100", attrs["data-reveal-offset"])
	assert.Equal(t, "0.1", attrs["data-reveal-threshold"])
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet()

	assert.Contains(t, css, `[data-animate="fade-in-up"]{opacity:0;transform:translate3d(0,30px,0);`)
	assert.Contains(t, css, `[data-animate="fade-in-up"].is-visible{opacity:1;transform:none;}`)
	assert.Contains(t, css, `[data-animate="scale-in"]{opacity:0;transform:scale(0.8);`)
	assert.Contains(t, css, `[data-animate="glow-pulse"]{animation:glow-pulse 2s ease-in-out infinite}`)
	assert.Contains(t, css, `[data-animate="glass-card"].is-visible:hover{opacity:1;transform:translate3d(0,-5px,0);backdrop-filter:blur(12px);transition-duration:0.3s`)
	assert.Contains(t, css, "cubic-bezier(0.6, -0.05, 0.01, 0.99)")
	assert.Contains(t, css, "marquee 20s linear infinite")
	assert.Contains(t, css, "marquee-reverse 25s linear infinite")
	assert.Contains(t, css, "prefers-reduced-motion")

	for _, name := range Names() {
		assert.True(t, strings.Contains(css, `"`+name+`"`), "missing rules for %s", name)
	}
}
