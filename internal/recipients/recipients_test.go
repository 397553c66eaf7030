package recipients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	list := []string{"a@x.com", "b@x.com", "c@y.org"}

	encoded := Encode(list)
	assert.Equal(t, "a@x.com, b@x.com, c@y.org", encoded)
	assert.Equal(t, list, Decode(encoded))
}

func TestDecodeTrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, Decode(" a@x.com ,, b@x.com , "))
	assert.Nil(t, Decode(""))
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" a@x.com", "b@x.com ", "a@x.com", "", "  "})
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, got)

	assert.Empty(t, Normalize([]string{"", "   "}))
}

func TestNormalizePreservesOrder(t *testing.T) {
	got := Normalize([]string{"c@x.com", "a@x.com", "c@x.com", "b@x.com"})
	assert.Equal(t, []string{"c@x.com", "a@x.com", "b@x.com"}, got)
}
