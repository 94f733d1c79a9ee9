// Package container provides interfaces for managing container data structures.
// It supports JSON and YAML serialization and deserialization, allowing containers
// to convert their elements to and from both formats in a standardized manner.
package container

import (
	"encoding/json"

	"gopkg.in/yaml.v2"
)

// JSONCodec defines an interface for containers that support both JSON
// serialization and deserialization. It combines the Marshaler and Unmarshaler
// interfaces for convenience.
//
// This interface is optional and may be implemented as needed.
type JSONCodec interface {
	json.Marshaler
	json.Unmarshaler
}

// YAMLCodec defines an interface for containers that support both YAML
// serialization and deserialization via gopkg.in/yaml.v2.
//
// This interface is optional and may be implemented as needed.
type YAMLCodec interface {
	yaml.Marshaler
	yaml.Unmarshaler
}
