// Package markdown renders user supplied markdown (ticket comments) to
// sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/merojugx/mero/internal/shared/classnames"
)

type Renderer interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	ToHTMLSanitized(markdown string) (string, error)
	// RenderComment returns sanitized HTML wrapped in a div whose class list
	// reflects the given flags.
	RenderComment(body string, opts CommentOptions) (string, error)
}

type CommentOptions struct {
	Internal      bool
	Edited        bool
	HasAttachment bool
}

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")

	return &renderer{md: md, policy: policy}
}

func (r *renderer) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (r *renderer) Sanitize(htmlContent string) string {
	return r.policy.Sanitize(htmlContent)
}

func (r *renderer) ToHTMLSanitized(markdown string) (string, error) {
	out, err := r.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return r.Sanitize(out), nil
}

func (r *renderer) RenderComment(body string, opts CommentOptions) (string, error) {
	inner, err := r.ToHTMLSanitized(body)
	if err != nil {
		return "", err
	}
	class := classnames.Join("comment-body", map[string]bool{
		"comment-internal":        opts.Internal,
		"comment-edited":          opts.Edited,
		"comment-has-attachments": opts.HasAttachment,
	})
	return fmt.Sprintf(`<div class="%s">%s</div>`, class, inner), nil
}
