package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingSetValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		wantKind string
		want     interface{}
	}{
		{"float", 18.5, SettingNumber, 18.5},
		{"int promotes to number", 20, SettingNumber, 20.0},
		{"string", "dark", SettingText, "dark"},
		{"bool", true, SettingBool, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Setting
			require.NoError(t, s.SetValue(tt.value))
			assert.Equal(t, tt.wantKind, s.Kind)
			assert.Equal(t, tt.want, s.Value())
		})
	}
}

func TestSettingSetValueUnsupported(t *testing.T) {
	var s Setting
	err := s.SetValue([]string{"nope"})
	assert.Error(t, err)
}

func TestSettingAccessorsMatchKind(t *testing.T) {
	var s Setting
	require.NoError(t, s.SetValue(42.0))

	n, ok := s.Number()
	assert.True(t, ok)
	assert.Equal(t, 42.0, n)

	_, ok = s.Text()
	assert.False(t, ok)
	_, ok = s.Bool()
	assert.False(t, ok)
}

func TestSettingSetValueClearsOldVariant(t *testing.T) {
	var s Setting
	require.NoError(t, s.SetValue("hello"))
	require.NoError(t, s.SetValue(false))

	assert.Equal(t, SettingBool, s.Kind)
	assert.Equal(t, "", s.TextValue)
	b, ok := s.Bool()
	assert.True(t, ok)
	assert.False(t, b)
}
