package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64Less(t *testing.T) {
	assert.True(t, F64(1).Less(2))
	assert.False(t, F64(2).Less(1))
	assert.False(t, F64(1).Less(1))
}

func TestLexLess(t *testing.T) {
	cases := []struct {
		name string
		a, b Lex
		want bool
	}{
		{"first component decides", Lex{1, 9}, Lex{2, 0}, true},
		{"first component decides reversed", Lex{2, 0}, Lex{1, 9}, false},
		{"tie falls to second", Lex{1, 2}, Lex{1, 3}, true},
		{"equal", Lex{1, 2}, Lex{1, 2}, false},
		{"prefix is lesser", Lex{1}, Lex{1, 0}, true},
		{"extension is greater", Lex{1, 0}, Lex{1}, false},
		{"empty against empty", Lex{}, Lex{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Less(tc.b))
		})
	}
}
