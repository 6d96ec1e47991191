package common

import (
	"testing"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	conf.Conf = conf.DefaultConfig(t.TempDir())
	conf.Conf.TokenExpiresIn = 1
	SecretKey = []byte("test-secret")

	user := &model.User{ID: 7, Username: "alice"}
	token, err := GenerateToken(user, "sess-key-1")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "sess-key-1", claims.SessionKey)
}

func TestParseTokenWrongKey(t *testing.T) {
	conf.Conf = conf.DefaultConfig(t.TempDir())
	SecretKey = []byte("key-one")
	token, err := GenerateToken(&model.User{Username: "bob"}, "s")
	require.NoError(t, err)

	SecretKey = []byte("key-two")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	SecretKey = []byte("k")
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
