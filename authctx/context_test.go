package authctx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_UnmarshalStringRoles(t *testing.T) {
	t.Parallel()

	raw := `{"t":0,"c":"abcde12345","a":false,"r":["admin","ops"],"ip":"127.0.0.1",` +
		`"u":{"sid":"aaaabbbb","id":"ccccdddd","r":["reader"]}}`

	var ctx Context
	require.NoError(t, json.Unmarshal([]byte(raw), &ctx))

	assert.Equal(t, KindStringRoles, ctx.Kind)
	assert.Equal(t, "abcde12345", ctx.ClientID)
	assert.False(t, ctx.AuthenticatedSecret)
	assert.Equal(t, "127.0.0.1", ctx.IP)
	assert.False(t, ctx.Debug)

	assert.True(t, ctx.HasRole("admin"))
	assert.True(t, ctx.HasRole("ops"))
	assert.False(t, ctx.HasRole("root"))

	require.NotNil(t, ctx.User)
	assert.Equal(t, "aaaabbbb", ctx.User.SessionID)
	assert.Equal(t, "ccccdddd", ctx.User.UserID)
	assert.Equal(t, "ccccdddd", ctx.UserID())
	assert.True(t, ctx.User.Roles.Has("reader"))
	assert.Nil(t, ctx.User.Scopes)
}

func TestContext_UnmarshalBitwiseRoles(t *testing.T) {
	t.Parallel()

	raw := `{"t":1,"c":"abcde12345","a":true,"r":5,"ip":"10.0.0.1","d":true,` +
		`"u":{"sid":"aaaabbbb","id":"ccccdddd","r":2,"s":8}}`

	var ctx Context
	require.NoError(t, json.Unmarshal([]byte(raw), &ctx))

	assert.Equal(t, KindBitwiseRoles, ctx.Kind)
	assert.True(t, ctx.AuthenticatedSecret)
	assert.True(t, ctx.Debug)

	assert.True(t, ctx.HasRoleBit(1))
	assert.True(t, ctx.HasRoleBit(4))
	assert.True(t, ctx.HasRoleBit(5))
	assert.False(t, ctx.HasRoleBit(2))
	assert.False(t, ctx.HasRole("admin"))

	require.NotNil(t, ctx.User)
	assert.True(t, ctx.User.Roles.HasBit(2))
	require.NotNil(t, ctx.User.Scopes)
	assert.True(t, ctx.User.Scopes.HasBit(8))
}

func TestContext_UnmarshalEmptyRoles(t *testing.T) {
	t.Parallel()

	raw := `{"t":0,"c":"abcde12345","a":false,"r":[],"ip":"127.0.0.1",` +
		`"u":{"sid":"aaaabbbb","id":"ccccdddd","r":[]}}`

	var ctx Context
	require.NoError(t, json.Unmarshal([]byte(raw), &ctx))

	assert.True(t, ctx.Roles.Empty())
	assert.False(t, ctx.Roles.Bitwise)
	require.NotNil(t, ctx.User)
	assert.True(t, ctx.User.Roles.Empty())
}

func TestContext_NoUserSession(t *testing.T) {
	t.Parallel()

	raw := `{"t":0,"c":"abcde12345","a":true,"r":["svc"],"ip":"127.0.0.1"}`

	var ctx Context
	require.NoError(t, json.Unmarshal([]byte(raw), &ctx))

	assert.Nil(t, ctx.User)
	assert.Empty(t, ctx.UserID())
}

func TestContext_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("string roles", func(t *testing.T) {
		t.Parallel()

		in := `{"t":0,"c":"abcde12345","a":false,"r":["admin"],"ip":"127.0.0.1"}`

		var ctx Context
		require.NoError(t, json.Unmarshal([]byte(in), &ctx))

		out, err := json.Marshal(&ctx)
		require.NoError(t, err)

		var again Context
		require.NoError(t, json.Unmarshal(out, &again))
		assert.Equal(t, ctx, again)
	})

	t.Run("bitwise roles", func(t *testing.T) {
		t.Parallel()

		in := `{"t":1,"c":"abcde12345","a":true,"r":3,"ip":"127.0.0.1"}`

		var ctx Context
		require.NoError(t, json.Unmarshal([]byte(in), &ctx))

		out, err := json.Marshal(&ctx)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"r":3`)
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "string-roles", KindStringRoles.String())
	assert.Equal(t, "bitwise-roles", KindBitwiseRoles.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
