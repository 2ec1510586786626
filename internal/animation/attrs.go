package animation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// Attrs returns the attributes that bind an element to a preset. Unknown
// names yield no attributes so the element renders without motion.
func Attrs(name string) templ.Attributes {
	if _, ok := presets[name]; !ok {
		return templ.Attributes{}
	}

	return templ.Attributes{"data-animate": name}
}

// Delayed binds an element to a preset with an explicit start delay.
func Delayed(name string, delay time.Duration) templ.Attributes {
	attrs := Attrs(name)
	if len(attrs) > 0 && delay > 0 {
		attrs["style"] = "--motion-delay:" + seconds(delay)
	}

	return attrs
}

// Child binds the index-th child of a container to the child preset, delayed
// according to the container's stagger settings.
func Child(container, child string, index int) templ.Attributes {
	c, ok := presets[container]
	if !ok {
		return Attrs(child)
	}

	return Delayed(child, c.ChildDelay(index))
}

// RevealAttrs renders the observer settings as data attributes for <body>.
func RevealAttrs(r Reveal) templ.Attributes {
	return templ.Attributes{
		"data-reveal-duration":  strconv.FormatInt(r.Duration.Milliseconds(), 10),
		"data-reveal-easing":    string(r.Easing),
		"data-reveal-once":      strconv.FormatBool(r.Once),
		"data-reveal-offset":    strconv.Itoa(r.Offset),
		"data-reveal-threshold": formatFloat(r.Threshold),
	}
}

func seconds(d time.Duration) string {
	return formatFloat(d.Seconds()) + "s"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func px(f float64) string {
	if f == 0 {
		return "0"
	}

	return fmt.Sprintf("%spx", formatFloat(f))
}
