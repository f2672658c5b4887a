package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	assert.Equal(t, "datagen dev (commit unknown, built unknown)", String())

	Version = "v0.3.1"
	assert.Contains(t, String(), "datagen v0.3.1 ")
}
