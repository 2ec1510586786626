package animation

import (
	"fmt"
	"strings"
)

// Stylesheet renders every preset, the looping keyframes and the reduced
// motion override as CSS.
func Stylesheet() string {
	var b strings.Builder

	b.WriteString("/* generated motion presets */\n")
	for _, name := range Names() {
		writePreset(&b, presets[name])
	}

	b.WriteString("@keyframes glow-pulse{0%,100%{box-shadow:0 0 20px rgba(0,102,255,.5)}50%{box-shadow:0 0 40px rgba(0,102,255,.8)}}\n")
	b.WriteString("@keyframes marquee{from{transform:translateX(0)}to{transform:translateX(-50%)}}\n")
	b.WriteString("@keyframes marquee-reverse{from{transform:translateX(-50%)}to{transform:translateX(0)}}\n")
	fmt.Fprintf(&b, ".marquee-track{animation:marquee %s linear infinite}\n", seconds(MarqueeDurations[0]))
	fmt.Fprintf(&b, ".marquee-track.reverse{animation:marquee-reverse %s linear infinite}\n", seconds(MarqueeDurations[1]))
	b.WriteString("@media (prefers-reduced-motion:reduce){[data-animate]{opacity:1!important;transform:none!important;transition:none!important;animation:none!important}.marquee-track{animation:none}}\n")

	return b.String()
}

func writePreset(b *strings.Builder, p Preset) {
	sel := fmt.Sprintf(`[data-animate=%q]`, p.Name)

	if p.Keyframes != "" {
		fmt.Fprintf(b, "%s{animation:%s %s %s infinite}\n", sel, p.Keyframes, seconds(p.Loop), p.Transition.Easing)

		return
	}

	if p.Transition.Duration == 0 {
		// containers only pace their children
		fmt.Fprintf(b, "%s{--motion-stagger:%s}\n", sel, seconds(p.Transition.Stagger))

		return
	}

	t := p.Transition
	timing := fmt.Sprintf("%s %s var(--motion-delay,%s)", seconds(t.Duration), t.Easing, seconds(t.Delay))
	fmt.Fprintf(b, "%s{%stransition:opacity %s,transform %s,backdrop-filter %s}\n",
		sel, declarations(p.Hidden), timing, timing, timing)
	fmt.Fprintf(b, "%s.is-visible{%s}\n", sel, declarations(p.Visible))

	if p.Hover != nil {
		fmt.Fprintf(b, "%s.is-visible:hover{%stransition-duration:%s;transition-delay:0s}\n",
			sel, declarations(*p.Hover), seconds(p.HoverDuration))
	}
}

func declarations(s State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "opacity:%s;", formatFloat(s.Opacity))

	transform := "none"
	var parts []string
	if s.X != 0 || s.Y != 0 {
		parts = append(parts, fmt.Sprintf("translate3d(%s,%s,0)", px(s.X), px(s.Y)))
	}
	if s.Scale != 0 && s.Scale != 1 {
		parts = append(parts, fmt.Sprintf("scale(%s)", formatFloat(s.Scale)))
	}
	if len(parts) > 0 {
		transform = strings.Join(parts, " ")
	}
	fmt.Fprintf(&b, "transform:%s;", transform)

	if s.Blur > 0 {
		fmt.Fprintf(&b, "backdrop-filter:blur(%s);", px(s.Blur))
	}

	return b.String()
}
