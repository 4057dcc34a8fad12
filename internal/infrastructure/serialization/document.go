package serialization

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"kanban/internal/domain/entity"
)

// Format names a document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Codec converts a board to and from its stored document form
type Codec interface {
	Format() Format
	Marshal(board entity.Board) ([]byte, error)
	Unmarshal(data []byte) (entity.Board, error)
}

// NewCodec returns the codec for the named format
func NewCodec(format string) (Codec, error) {
	switch Format(format) {
	case FormatJSON:
		return JSONCodec{}, nil
	case FormatYAML, "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownFormat, format)
	}
}

// JSONCodec stores boards as indented JSON
type JSONCodec struct{}

// Format returns FormatJSON
func (JSONCodec) Format() Format { return FormatJSON }

// Marshal encodes the board as JSON
func (JSONCodec) Marshal(board entity.Board) ([]byte, error) {
	data, err := json.MarshalIndent(board.Normalize(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes a JSON document. The shape is accepted as-is.
func (JSONCodec) Unmarshal(data []byte) (entity.Board, error) {
	var board entity.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return entity.Board{}, fmt.Errorf("failed to parse board document: %w", err)
	}
	return board, nil
}

// YAMLCodec stores boards as YAML
type YAMLCodec struct{}

// Format returns FormatYAML
func (YAMLCodec) Format() Format { return FormatYAML }

// Marshal encodes the board as YAML with two-space indentation
func (YAMLCodec) Marshal(board entity.Board) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(board.Normalize()); err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML document. The shape is accepted as-is.
func (YAMLCodec) Unmarshal(data []byte) (entity.Board, error) {
	var board entity.Board
	if err := yaml.Unmarshal(data, &board); err != nil {
		return entity.Board{}, fmt.Errorf("failed to parse board document: %w", err)
	}
	return board, nil
}
