package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM answers based on which content type the prompt asks for.
type scriptedLLM struct {
	failOn string
}

func (s *scriptedLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if s.failOn != "" && strings.Contains(prompt, s.failOn) {
		return "", errors.New("boom")
	}
	switch {
	case strings.Contains(prompt, "product title"):
		return "Premium Wireless Headphones", nil
	case strings.Contains(prompt, "product description"):
		return "Crystal-clear audio. All-day comfort.", nil
	case strings.Contains(prompt, "meta title"):
		return "Best Wireless Headphones", nil
	case strings.Contains(prompt, "meta description"):
		return "Discover premium wireless headphones.", nil
	default:
		return "In today's fast-paced world, quality audio matters.", nil
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(&scriptedLLM{})
	c, err := g.Generate(context.Background(), "Wireless Bluetooth Headphones")
	require.NoError(t, err)

	assert.Equal(t, "Premium Wireless Headphones", c.Title)
	assert.Equal(t, "Crystal-clear audio. All-day comfort.", c.Description)
	assert.Equal(t, "Best Wireless Headphones", c.MetaTitle)
	assert.Equal(t, "Discover premium wireless headphones.", c.MetaDescription)
	assert.NotEmpty(t, c.BlogPost)
}

func TestGeneratePartialFailure(t *testing.T) {
	g := NewGenerator(&scriptedLLM{failOn: "blog post"})
	c, err := g.Generate(context.Background(), "Headphones")
	require.NoError(t, err)

	assert.Contains(t, c.BlogPost, "Error generating blog_post")
	assert.Equal(t, "Premium Wireless Headphones", c.Title, "other types still generate")
}

func TestGenerateJSON(t *testing.T) {
	g := NewGenerator(&scriptedLLM{})
	out, err := g.GenerateJSON(context.Background(), "Headphones")
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 5)
	assert.Equal(t, "Premium Wireless Headphones", decoded["title"])
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGenerator(&scriptedLLM{})
	_, err := g.Generate(ctx, "Headphones")
	require.ErrorIs(t, err, context.Canceled)
}
