package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	var testCases = []struct {
		in   any
		want int
		ok   bool
	}{
		{in: 3, want: 3, ok: true},
		{in: int64(128), want: 128, ok: true},
		{in: uint64(5), want: 5, ok: true},
		{in: 3.0, ok: false},
		{in: "3", ok: false},
		{in: true, ok: false},
	}
	for i, tc := range testCases {
		got, ok := Int(tc.in)
		assert.Equal(t, tc.ok, ok, "case %d", i)
		assert.Equal(t, tc.want, got, "case %d", i)
	}
}

func TestFloat(t *testing.T) {
	f, ok := Float(0.5)
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	f, ok = Float(1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)

	_, ok = Float(false)
	assert.False(t, ok)
}

func TestInts(t *testing.T) {
	src := []int{1, 2}
	got, ok := Ints(src)
	assert.True(t, ok)
	got[0] = 9
	assert.Equal(t, []int{1, 2}, src)

	got, ok = Ints([]interface{}{64, 32})
	assert.True(t, ok)
	assert.Equal(t, []int{64, 32}, got)

	_, ok = Ints([]interface{}{64, 0.5})
	assert.False(t, ok)

	_, ok = Ints(7)
	assert.False(t, ok)
}

func TestPointer(t *testing.T) {
	v := 3
	p := Pointer(v)
	*p = 4
	assert.Equal(t, 3, v)
	assert.Equal(t, 4, *p)
}
