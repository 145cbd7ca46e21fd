package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInfoSchema(t *testing.T) {
	_, err := NewInfoSchema()
	require.NoError(t, err)
}

func TestSchema_Validate(t *testing.T) {
	s, err := NewInfoSchema()
	require.NoError(t, err)

	assert.NoError(t, s.Validate([]byte(`{"message":"Replica on port 3000"}`)))
}

func TestSchema_Validate_Invalid(t *testing.T) {
	s, err := NewInfoSchema()
	require.NoError(t, err)

	tests := map[string]string{
		"missing message": `{}`,
		"wrong type":      `{"message":3000}`,
		"wrong pattern":   `{"message":"Replica on port 0"}`,
		"extra property":  `{"message":"Replica on port 3000","port":3000}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			err := s.Validate([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestSchema_Validate_Malformed(t *testing.T) {
	s, err := NewInfoSchema()
	require.NoError(t, err)

	err = s.Validate([]byte(`{"message":`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDocument)
}
