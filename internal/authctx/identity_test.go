package authctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewComputesIsAdmin(t *testing.T) {
	cases := []struct {
		roles []string
		want  bool
	}{
		{[]string{"admin"}, true},
		{[]string{"viewer", "admin"}, true},
		{[]string{"viewer"}, false},
		{nil, false},
	}
	for _, tc := range cases {
		id := New("u1", "x@y.com", tc.roles)
		assert.Equal(t, tc.want, id.IsAdmin, "roles=%v", tc.roles)
	}
}

func TestNewNormalizesEmail(t *testing.T) {
	id := New("u1", " Admin@Example.COM ", nil)
	assert.Equal(t, "admin@example.com", id.Email)
}
