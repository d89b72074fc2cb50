package hbswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Defaults(t *testing.T) {
	helpers, err := New()
	require.NoError(t, err)
	require.NotNil(t, helpers)

	assert.Equal(t, []string{DefaultSwitchName, DefaultCaseName, DefaultDefaultName}, helpers.HelperNames())
	assert.NotNil(t, helpers.logger)
}

func TestNew_Options(t *testing.T) {
	t.Run("custom names", func(t *testing.T) {
		helpers, err := New(
			WithSwitchName("pick"),
			WithCaseName("option"),
			WithDefaultName("fallback"),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"pick", "option", "fallback"}, helpers.HelperNames())
	})

	t.Run("custom logger", func(t *testing.T) {
		logger := zap.NewNop()
		helpers, err := New(WithLogger(logger))
		require.NoError(t, err)
		assert.Same(t, logger, helpers.logger)
	})

	t.Run("custom comparator", func(t *testing.T) {
		called := false
		helpers, err := New(WithComparator(func(value, label interface{}) bool {
			called = true
			return false
		}))
		require.NoError(t, err)

		helpers.config.compare(nil, nil)
		assert.True(t, called)
	})
}

func TestNew_Validation(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := New(WithCaseName(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyHelperName)
	})

	t.Run("colliding names", func(t *testing.T) {
		_, err := New(WithCaseName(DefaultSwitchName))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDuplicateNames)
	})

	t.Run("nil comparator", func(t *testing.T) {
		_, err := New(WithComparator(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilComparator)
	})
}

func TestMustNew_PanicsOnInvalidConfig(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(WithSwitchName(""))
	})
}

func TestHelpers_Map(t *testing.T) {
	helpers := MustNew(
		WithSwitchName("sel"),
		WithCaseName("opt"),
		WithDefaultName("other"),
	)

	m := helpers.Map()
	require.Len(t, m, 3)
	assert.Contains(t, m, "sel")
	assert.Contains(t, m, "opt")
	assert.Contains(t, m, "other")
	for name, fn := range m {
		assert.NotNil(t, fn, name)
	}
}
