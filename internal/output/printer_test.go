package output

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithPlain())

	p.Info("validating manifest")
	p.Success("2 commands valid")
	p.Warning("snapshot is stale")
	p.Error("schema error")
	p.Detail("  at weather.city")
	p.Println("done")
	p.Printf("%d of %d\n", 1, 2)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"validating manifest",
		"2 commands valid",
		"snapshot is stale",
		"schema error",
		"  at weather.city",
		"done",
		"1 of 2",
	}, lines)
}

func TestPrinterConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithPlain())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Info("line")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, "line", line)
	}
}
