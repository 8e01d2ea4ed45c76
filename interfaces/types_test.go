package interfaces

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	for _, b := range Backends {
		parsed, err := ParseBackend(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
		assert.True(t, parsed.Valid())
	}

	for _, name := range []string{"", "NIL", "tdx", "sgx "} {
		_, err := ParseBackend(name)
		assert.True(t, errors.Is(err, ErrUnknownBackend), name)
		assert.False(t, Backend(name).Valid())
	}
}

func TestKeepLocation(t *testing.T) {
	id := uuid.MustParse("0afa438e-acaa-4158-9518-ad59256def34")
	keep := Keep{UUID: id, Contract: Contract{UUID: uuid.New(), Backend: BackendKvm}}
	assert.Equal(t, "/keeps/0afa438e-acaa-4158-9518-ad59256def34", keep.Location())
}

func TestContractString(t *testing.T) {
	c := Contract{UUID: uuid.MustParse("e6234733-513a-4883-981a-bfa972fa706b"), Backend: BackendNil}
	assert.Equal(t, "e6234733-513a-4883-981a-bfa972fa706b (nil)", c.String())
}
