package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	k1 := ObjectKey("issues/4/", "../../etc/pass wd.txt")
	k2 := ObjectKey("issues/4", "../../etc/pass wd.txt")

	assert.True(t, strings.HasPrefix(k1, "issues/4/"))
	assert.True(t, strings.HasSuffix(k1, "-pass_wd.txt"))
	assert.NotEqual(t, k1, k2)
	assert.NotContains(t, strings.TrimPrefix(k1, "issues/4/"), "/")
}

func TestObjectKeyWindowsPath(t *testing.T) {
	k := ObjectKey("logos", `C:\Users\me\logo.png`)
	assert.True(t, strings.HasSuffix(k, "-logo.png"))
}

func TestNewMinioStore(t *testing.T) {
	s, err := NewMinioStore(Options{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "x"})
	assert.NoError(t, err)
	assert.Equal(t, "x", s.bucket)
}
