package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aikit/pkg/llm"
)

// Content holds the generated marketing copy for a product.
type Content struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	BlogPost        string `json:"blog_post"`
}

type Generator struct {
	LLM llm.Client
}

func NewGenerator(client llm.Client) *Generator {
	return &Generator{LLM: client}
}

// Generate produces every content type for the product. A failure on one type
// is recorded in its field and does not abort the rest of the batch.
func (g *Generator) Generate(ctx context.Context, productInfo string) (*Content, error) {
	var c Content
	fields := []struct {
		name     string
		template string
		dst      *string
	}{
		{"title", "Create a compelling product title for: %s. Max 60 characters.", &c.Title},
		{"description", "Write a 2-3 sentence product description for: %s", &c.Description},
		{"meta_title", "Create an SEO meta title (50-60 chars) for: %s", &c.MetaTitle},
		{"meta_description", "Create an SEO meta description (150-160 chars) for: %s", &c.MetaDescription},
		{"blog_post", "Write a 200-word blog post about the benefits of: %s", &c.BlogPost},
	}

	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reply, err := g.LLM.Complete(ctx, fmt.Sprintf(f.template, productInfo))
		if err != nil {
			*f.dst = fmt.Sprintf("Error generating %s: %v", f.name, err)
			continue
		}
		*f.dst = strings.TrimSpace(reply)
	}
	return &c, nil
}

// GenerateJSON renders the generated content as an indented JSON document.
func (g *Generator) GenerateJSON(ctx context.Context, productInfo string) (string, error) {
	c, err := g.Generate(ctx, productInfo)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
