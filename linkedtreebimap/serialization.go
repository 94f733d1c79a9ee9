// Package linkedtreebimap provides JSON and YAML serialization for the map.
//
// The persisted form is the forward projection: keys mapped to values. Restore
// clears the map and performs sequential puts, so value collisions in the
// input collapse exactly as live puts would. Custom comparators are part of
// the surrounding configuration and must be re-supplied at restore time.
package linkedtreebimap

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/qntx/bidimap/container"
)

// --------------------------------------------------------------------------------
// Constants and Errors

// Predefined errors for serialization operations.
var (
	ErrMarshalFailure   = errors.New("failed to marshal map")
	ErrUnmarshalFailure = errors.New("failed to unmarshal into map")
)

// --------------------------------------------------------------------------------
// Interface Assertions

// Ensure Map implements the codec interfaces at compile time.
var (
	_ container.JSONCodec = (*Map[string, int])(nil)
	_ container.YAMLCodec = (*Map[string, int])(nil)
	_ json.Marshaler      = (*Map[string, int])(nil)
	_ json.Unmarshaler    = (*Map[string, int])(nil)
	_ yaml.Marshaler      = (*Map[string, int])(nil)
	_ yaml.Unmarshaler    = (*Map[string, int])(nil)
)

// --------------------------------------------------------------------------------
// JSON

// ToJSON serializes the map's pairs into a JSON object keyed by the map's keys.
//
// Time complexity: O(n).
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	elems := make(map[K]V, m.Len())

	for k, v := range m.Iter() {
		elems[k] = v
	}

	data, err := json.Marshal(elems)
	if err != nil {
		return nil, fmt.Errorf("linkedtreebimap: %w: %w", ErrMarshalFailure, err)
	}

	return data, nil
}

// FromJSON populates the map from a JSON object.
//
// Clears the map and performs sequential puts. Time complexity: O(n log n).
func (m *Map[K, V]) FromJSON(data []byte) error {
	var elems map[K]V
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("linkedtreebimap: %w: %w", ErrUnmarshalFailure, err)
	}

	m.Clear()

	for k, v := range elems {
		m.Put(k, v)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	return m.FromJSON(data)
}

// --------------------------------------------------------------------------------
// YAML

// MarshalYAML implements yaml.Marshaler.
//
// Pairs are emitted as an ordered mapping in forward key order, so the
// document is stable across marshals of equal maps.
func (m *Map[K, V]) MarshalYAML() (interface{}, error) {
	slice := make(yaml.MapSlice, 0, m.Len())

	for k, v := range m.Iter() {
		slice = append(slice, yaml.MapItem{Key: k, Value: v})
	}

	return slice, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Clears the map and performs sequential puts from the decoded mapping.
func (m *Map[K, V]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var elems map[K]V
	if err := unmarshal(&elems); err != nil {
		return fmt.Errorf("linkedtreebimap: %w: %w", ErrUnmarshalFailure, err)
	}

	m.Clear()

	for k, v := range elems {
		m.Put(k, v)
	}

	return nil
}
