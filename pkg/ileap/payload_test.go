package ileap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return out
}

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		wantKind ileap.PayloadKind
		wantID   string
		wantErr  error
	}{
		{name: "shipment", input: mustJSON(t, testShipment()), wantKind: ileap.KindShipment, wantID: "shipment-test"},
		{name: "toc", input: mustJSON(t, testToc()), wantKind: ileap.KindTOC, wantID: "toc-test"},
		{
			name:     "hoc",
			input:    mustJSON(t, testHoc(ileap.HocThroughputTonnes)),
			wantKind: ileap.KindHOC,
			wantID:   "hoc-test",
		},
		{name: "unknown object", input: []byte(`{"activityId":"tad-1"}`), wantErr: ileap.ErrUnknownPayload},
		{name: "not an object", input: []byte(`"toc"`), wantErr: ileap.ErrUnknownPayload},
		{name: "invalid toc", input: []byte(`{"tocId":"toc-1"}`), wantErr: pact.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ileap.DecodePayload(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, p.Kind())
			assert.Equal(t, tt.wantID, p.ID())
			assert.JSONEq(t, string(tt.input), string(mustJSON(t, p)))
		})
	}
}

func TestDecodePayloads(t *testing.T) {
	toc := mustJSON(t, testToc())
	hoc := mustJSON(t, testHoc(ileap.HocThroughputTonnes))

	t.Run("single object", func(t *testing.T) {
		got, err := ileap.DecodePayloads(toc)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ileap.KindTOC, got[0].Kind())
	})

	t.Run("array", func(t *testing.T) {
		got, err := ileap.DecodePayloads([]byte("[" + string(toc) + "," + string(hoc) + "]"))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ileap.KindTOC, got[0].Kind())
		assert.Equal(t, ileap.KindHOC, got[1].Kind())
	})

	t.Run("bad element", func(t *testing.T) {
		_, err := ileap.DecodePayloads([]byte("[" + string(toc) + `,{"x":1}]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ileap.ErrUnknownPayload)
		assert.Contains(t, err.Error(), "payloads[1]")
	})
}

func TestAnyPayloadEmpty(t *testing.T) {
	var empty ileap.AnyPayload
	assert.ErrorIs(t, empty.Validate(), ileap.ErrUnknownPayload)
	_, err := json.Marshal(empty)
	assert.ErrorIs(t, err, ileap.ErrUnknownPayload)

	wrapped := ileap.Any(testToc())
	assert.Equal(t, wrapped, ileap.Any(wrapped))
}
