package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LoadsAllPages(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	pages := []string{
		"home",
		"users/list", "users/add_form", "users/added", "users/edit_form",
		"users/updated", "users/delete_form", "users/deleted", "users/posts",
		"posts/list", "posts/add_form", "posts/added", "posts/edit_form",
		"posts/updated", "posts/delete_form", "posts/deleted",
	}
	for _, page := range pages {
		assert.NotNil(t, engine.Templates.Lookup(page), page)
	}
}

func TestEngine_RendersWithLayout(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "home", map[string]any{"Title": "Home"}, DefaultLayout)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Home</title>")
	assert.Contains(t, out, "Welcome to the Simple CRUD App")
}
