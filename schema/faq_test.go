package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQPageBuild(t *testing.T) {
	item := buildItem()
	item.Meta["_faq_items"] = []any{
		map[string]any{"question": "Do I need boots?", "answer": "Yes, sturdy ones."},
		map[string]any{"name": "Is it free?", "text": "Entry is free."},
		map[string]any{"question": "", "answer": "dropped"},
		"not a map",
	}

	obj := NewFAQPage().Build(buildCtx(item))
	assert.Equal(t, "FAQPage", obj.Type())

	raw, ok := obj.Get("mainEntity")
	require.True(t, ok)
	questions := raw.([]any)
	require.Len(t, questions, 2)

	first := questions[0].(*Object)
	assert.Equal(t, "Question", first.Type())
	name, _ := first.Get("name")
	assert.Equal(t, "Do I need boots?", name)

	answer, ok := first.Get("acceptedAnswer")
	require.True(t, ok)
	text, _ := answer.(*Object).Get("text")
	assert.Equal(t, "Yes, sturdy ones.", text)

	second := questions[1].(*Object)
	name, _ = second.Get("name")
	assert.Equal(t, "Is it free?", name)
}

func TestFAQPageWithoutItems(t *testing.T) {
	obj := NewFAQPage().Build(buildCtx(buildItem()))
	_, ok := obj.Get("mainEntity")
	assert.False(t, ok)

	result := Validate(obj, NewFAQPage())
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Missing required property: mainEntity")
}
