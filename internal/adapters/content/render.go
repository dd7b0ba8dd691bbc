package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// md renders record prose. Raw HTML in the source is dropped.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

var classPattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// sanitizer allows the layout elements the dialog bodies are built from.
func sanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("div", "p", "ul", "ol", "li", "strong", "em", "h4", "h5", "br", "code")
		policy.AllowAttrs("class").Matching(classPattern).Globally()
		policy.AllowImages()
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		bodyPolicy = policy
	})
	return bodyPolicy
}

// render writes c to a string and sanitizes the result.
func render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(sanitizer().Sanitize(buf.String())), nil
}

// markdown converts prose to HTML paragraphs.
func markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(strings.TrimSpace(src)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// htmlWriter accumulates markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) list(class string, items []string) {
	if len(items) == 0 {
		return
	}
	if class == "" {
		h.raw("<ul>")
	} else {
		h.raw(`<ul class="` + class + `">`)
	}
	for _, item := range items {
		h.raw("<li>")
		h.text(item)
		h.raw("</li>")
	}
	h.raw("</ul>")
}

func (h *htmlWriter) fact(icon, label, value string) {
	if value == "" {
		return
	}
	h.raw("<li>" + icon + " <strong>")
	h.text(label)
	h.raw(":</strong> ")
	h.text(value)
	h.raw("</li>")
}

// programBody lays a program out as an image and quick facts next to the
// overview, first-year courses, and careers.
func programBody(p Program) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		overview, err := markdown(p.Overview)
		if err != nil {
			return err
		}

		h := &htmlWriter{w: w}
		h.raw(`<div class="row"><div class="col-md-6">`)
		if p.Image != "" {
			h.raw(`<img src="`)
			h.text(p.Image)
			h.raw(`" alt="`)
			h.text(p.Title)
			h.raw(`" class="img-fluid rounded mb-3">`)
		}
		h.raw(`<div class="program-quick-info"><h5 class="h6">Quick Facts</h5><ul class="list-unstyled">`)
		h.fact("📅", "Duration", p.Duration)
		if p.Credits > 0 {
			h.fact("🎓", "Credits", strconv.Itoa(p.Credits)+" credits")
		}
		if p.Labs > 0 {
			h.fact("🔬", "Laboratories", strconv.Itoa(p.Labs)+" specialized")
		}
		h.raw(`</ul></div></div><div class="col-md-6"><h4 class="h5">Program Overview</h4>`)
		h.raw(overview)
		if len(p.Courses) > 0 {
			h.raw(`<h5 class="h6 mt-4">First Year Courses</h5>`)
			h.list("", p.Courses)
		}
		if len(p.Careers) > 0 {
			h.raw(`<h5 class="h6 mt-4">Career Opportunities</h5><p>`)
			h.text(strings.Join(p.Careers, ", "))
			h.raw("</p>")
		}
		h.raw("</div></div>")
		return h.err
	})
}

// clubBody lays a club out as its introduction, activities, and meeting
// schedule.
func clubBody(c Club) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		intro, err := markdown(c.Intro)
		if err != nil {
			return err
		}

		h := &htmlWriter{w: w}
		h.raw(intro)
		h.list("", c.Activities)
		if c.Meetings != "" {
			h.raw("<p><strong>Meetings:</strong> ")
			h.text(c.Meetings)
			h.raw("</p>")
		}
		return h.err
	})
}
