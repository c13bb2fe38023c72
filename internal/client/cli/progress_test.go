package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	b := newProgressBar(&buf, 10)

	b.Finish()
	assert.Empty(t, buf.String())

	b.Update(0)
	b.Update(50)
	b.Update(50)
	b.Update(150)
	b.Finish()

	frames := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\r")
	assert.Equal(t, []string{"", "[..........]   0%", "[#####.....]  50%", "[##########] 100%"}, frames)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
