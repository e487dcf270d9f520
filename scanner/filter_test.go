package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilterEmpty(t *testing.T) {
	f, err := NewFilter("")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.True(t, f.Include("/anything"))
	assert.True(t, f.Include("/bad\xffutf8"))
}

func TestNewFilterInvalid(t *testing.T) {
	_, err := NewFilter(`(unclosed`)
	require.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilterInclude(t *testing.T) {
	f, err := NewFilter(`node_modules|\.git/`)
	require.NoError(t, err)

	assert.True(t, f.Include("/src/main.go"))
	assert.False(t, f.Include("/src/node_modules/x.js"))
	assert.False(t, f.Include("/src/.git/HEAD"))
	assert.False(t, f.Include("/src/\xffmain.go"), "invalid UTF-8 is excluded")
	assert.Equal(t, `node_modules|\.git/`, f.String())
}
