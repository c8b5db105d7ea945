package site

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic_ContainsAssets(t *testing.T) {
	for _, name := range []string{"styles.css", "favicon.svg", "js/header.js"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}
