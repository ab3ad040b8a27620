package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastbu/casejson/pkg/jsontree"
)

func parseObject(t *testing.T, payload string) jsontree.Object {
	t.Helper()
	root, err := jsontree.Parse([]byte(payload))
	require.NoError(t, err)
	require.Equal(t, jsontree.KindObject, root.Kind())
	return root.Object()
}

func TestFieldExtractor(t *testing.T) {
	extract := FieldExtractor[int]("code", false)

	t.Run("decodes the field into the discriminator type", func(t *testing.T) {
		got, err := extract(parseObject(t, `{"code":3,"detail":"x"}`))
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := extract(parseObject(t, `{"detail":"x"}`))
		var missing *MissingDiscriminatorError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "code", missing.Field)
	})

	t.Run("value not decodable into the discriminator type", func(t *testing.T) {
		_, err := extract(parseObject(t, `{"code":{"nested":true}}`))
		var malformed *MalformedDiscriminatorError
		require.ErrorAs(t, err, &malformed)
	})
}

func TestFieldExtractorStringDiscriminator(t *testing.T) {
	extract := FieldExtractor[string]("kind", false)

	got, err := extract(parseObject(t, `{"kind":"created"}`))
	require.NoError(t, err)
	assert.Equal(t, "created", got)
}

func TestFieldExtractorCaseInsensitive(t *testing.T) {
	extract := FieldExtractor[int]("code", true)

	t.Run("folded match", func(t *testing.T) {
		got, err := extract(parseObject(t, `{"CODE":4}`))
		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	t.Run("exact-case member wins over folded member", func(t *testing.T) {
		got, err := extract(parseObject(t, `{"CODE":9,"code":4}`))
		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})
}
