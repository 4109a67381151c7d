package model_test

import (
	"crypto/md5"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a-epstein/microblog/internal/model"
)

func TestAvatarURL(t *testing.T) {
	user := &model.User{Email: "Alice@Example.COM"}

	digest := md5.Sum([]byte("alice@example.com"))
	want := fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon&s=128", digest)
	assert.Equal(t, want, user.AvatarURL(128))
}
