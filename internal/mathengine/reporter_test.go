package mathengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporter(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	reporter := NewSimpleReporter(&out)

	assert.False(reporter.HadError())

	reporter.Report(NewDivisionByZeroError())
	assert.True(reporter.HadError())
	assert.Equal("Division by zero\n", out.String())

	reporter.Reset()
	assert.False(reporter.HadError())
}
