package cards

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id := NewID[CardTag]()
	parsed, err := ParseID[CardTag](id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = ParseID[CardTag]("not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.True(t, CardID{}.IsZero())
}

func TestIDJSON(t *testing.T) {
	type payload struct {
		Card  CardID   `json:"card"`
		Staff *StaffID `json:"staff,omitempty"`
	}
	in := payload{Card: NewID[CardTag]()}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"card":"`+in.Card.String()+`"}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)
	require.Error(t, json.Unmarshal([]byte(`{"card":"nope"}`), &out))
}

func TestIDSQL(t *testing.T) {
	id := NewID[StoreTag]()
	v, err := id.Value()
	require.NoError(t, err)
	require.Equal(t, id.String(), v)

	var scanned StoreID
	require.NoError(t, scanned.Scan(id.String()))
	require.Equal(t, id, scanned)

	v, err = StoreID{}.Value()
	require.NoError(t, err)
	require.Nil(t, v)
}
