package truckscontrol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentSingletonBecomesList(t *testing.T) {
	root, err := ParseDocument(strings.NewReader(
		"<ResponseMensagemCB><MensagemCB><mId>5</mId></MensagemCB></ResponseMensagemCB>"))
	require.NoError(t, err)

	messages := root.Children("MensagemCB")
	require.Len(t, messages, 1)
	assert.Equal(t, "5", messages[0].Field("mId"))
}

func TestParseDocumentRepeatedChildren(t *testing.T) {
	root, err := ParseDocument(strings.NewReader(
		"<ResponseVeiculo><Veiculo><veiID>1</veiID></Veiculo><Veiculo><veiID>2</veiID></Veiculo></ResponseVeiculo>"))
	require.NoError(t, err)

	vehicles := root.Children("Veiculo")
	require.Len(t, vehicles, 2)
	assert.Equal(t, "1", vehicles[0].Field("veiID"))
	assert.Equal(t, "2", vehicles[1].Field("veiID"))
}

func TestElementFieldAndHas(t *testing.T) {
	root, err := ParseDocument(strings.NewReader(
		"<MensagemCB><vel>42</vel><evt4></evt4></MensagemCB>"))
	require.NoError(t, err)

	assert.Equal(t, "42", root.Field("vel"))

	// An empty element is present, just valueless. That distinction drives
	// the tri-state ignition handling.
	assert.True(t, root.Has("evt4"))
	assert.Equal(t, "", root.Field("evt4"))

	assert.False(t, root.Has("odm"))
	assert.Equal(t, "", root.Field("odm"))
}

func TestParseDocumentWhitespaceTrimmed(t *testing.T) {
	root, err := ParseDocument(strings.NewReader(
		"<Veiculo>\n  <placa>  ABC-1234 </placa>\n</Veiculo>"))
	require.NoError(t, err)

	assert.Equal(t, "ABC-1234", root.Field("placa"))
}

func TestParseDocumentTruncated(t *testing.T) {
	_, err := ParseDocument(strings.NewReader("<ResponseVeiculo><Veiculo>"))
	assert.Error(t, err)
}
