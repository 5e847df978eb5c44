package models

import (
	"fmt"
	"time"
)

// Setting value kinds
const (
	SettingNumber = "number"
	SettingText   = "text"
	SettingBool   = "bool"
)

// Setting is a per-company configuration entry. The value is a tagged
// variant: exactly one of the typed columns is meaningful, selected by Kind.
type Setting struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompanyID   uint      `json:"company_id" gorm:"not null;uniqueIndex:idx_settings_company_key"`
	Key         string    `json:"key" gorm:"not null;uniqueIndex:idx_settings_company_key"`
	Kind        string    `json:"kind" gorm:"not null"`
	NumberValue float64   `json:"-"`
	TextValue   string    `json:"-"`
	BoolValue   bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Number returns the numeric value, or false when the setting holds a
// different kind.
func (s *Setting) Number() (float64, bool) {
	if s.Kind != SettingNumber {
		return 0, false
	}
	return s.NumberValue, true
}

// Text returns the text value, or false when the setting holds a different kind.
func (s *Setting) Text() (string, bool) {
	if s.Kind != SettingText {
		return "", false
	}
	return s.TextValue, true
}

// Bool returns the boolean value, or false when the setting holds a
// different kind.
func (s *Setting) Bool() (bool, bool) {
	if s.Kind != SettingBool {
		return false, false
	}
	return s.BoolValue, true
}

// Value returns the active variant as an untyped value for serialization.
func (s *Setting) Value() interface{} {
	switch s.Kind {
	case SettingNumber:
		return s.NumberValue
	case SettingText:
		return s.TextValue
	case SettingBool:
		return s.BoolValue
	}
	return nil
}

// SetValue stores v into the matching typed column and tags the kind.
func (s *Setting) SetValue(v interface{}) error {
	switch val := v.(type) {
	case float64:
		s.Kind, s.NumberValue, s.TextValue, s.BoolValue = SettingNumber, val, "", false
	case int:
		s.Kind, s.NumberValue, s.TextValue, s.BoolValue = SettingNumber, float64(val), "", false
	case string:
		s.Kind, s.NumberValue, s.TextValue, s.BoolValue = SettingText, 0, val, false
	case bool:
		s.Kind, s.NumberValue, s.TextValue, s.BoolValue = SettingBool, 0, "", val
	default:
		return fmt.Errorf("unsupported setting value type %T", v)
	}
	return nil
}
