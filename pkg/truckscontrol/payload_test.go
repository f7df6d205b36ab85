package truckscontrol

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = "<ResponseVeiculo><Veiculo><veiID>10</veiID></Veiculo></ResponseVeiculo>"

func zipPayload(t *testing.T, contents string) []byte {
	var buffer bytes.Buffer

	writer := zip.NewWriter(&buffer)
	entry, err := writer.Create("response.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buffer.Bytes()
}

func gzipPayload(t *testing.T, contents string) []byte {
	var buffer bytes.Buffer

	writer := gzip.NewWriter(&buffer)
	_, err := writer.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buffer.Bytes()
}

func TestDecodePayloadPlainText(t *testing.T) {
	decoded, err := DecodePayload([]byte(samplePayload))
	require.NoError(t, err)

	assert.Equal(t, samplePayload, decoded)
}

func TestDecodePayloadZipAndGzipMatch(t *testing.T) {
	fromZip, err := DecodePayload(zipPayload(t, samplePayload))
	require.NoError(t, err)

	fromGzip, err := DecodePayload(gzipPayload(t, samplePayload))
	require.NoError(t, err)

	assert.Equal(t, samplePayload, fromZip)
	assert.Equal(t, fromZip, fromGzip)
}

func TestDecodePayloadEmptyZipFallsThroughToRawText(t *testing.T) {
	var buffer bytes.Buffer
	writer := zip.NewWriter(&buffer)
	require.NoError(t, writer.Close())

	decoded, err := DecodePayload(buffer.Bytes())
	require.NoError(t, err)

	// An entry-less archive is treated as raw text rather than an error.
	assert.Equal(t, buffer.String(), decoded)
}

func TestDecodePayloadCorruptGzip(t *testing.T) {
	_, err := DecodePayload([]byte{0x1F, 0x8B, 0x00, 0x01})
	assert.Error(t, err)
}
