package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecs(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal([]any{"a", 1, nil, map[string]int{"x": 2}})
			require.NoError(t, err)
			assert.JSONEq(t, `["a",1,null,{"x":2}]`, string(b))

			_, err = c.Marshal(make(chan int))
			assert.Error(t, err)
		})
	}
}

func mustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "go-json", Default.Name())
	assert.Equal(t, `"x"`, string(mustMarshal(nil, "x")))
}

func BenchmarkCodecMarshal(b *testing.B) {
	v := map[string]any{"letters": []string{"a", "b", "c"}, "numbers": []int{10, 20, 30}}
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = mustMarshal(c, v)
			}
		})
	}
}
