package truckscontrol

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)

	return NewClient(server.URL, "operator", "hunter2"), server
}

func TestClientCallParsesResponse(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "<login>operator</login>")

		w.Write([]byte("<ResponseVeiculo><Veiculo><veiID>7</veiID></Veiculo></ResponseVeiculo>"))
	})
	defer server.Close()

	root, err := client.Vehicles(context.Background())
	require.NoError(t, err)
	require.NotNil(t, root)

	assert.Equal(t, "ResponseVeiculo", root.Name)
	assert.Equal(t, "7", root.Children("Veiculo")[0].Field("veiID"))
}

func TestClientCallErrorEnvelopeIsSoftNil(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<ErrorRequest><codigo>12</codigo><erro>sem dados</erro></ErrorRequest>"))
	})
	defer server.Close()

	root, err := client.Messages(context.Background(), "1")

	// An upstream application error is "no data this cycle", not a failure.
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestClientCallNonXMLBody(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Service Temporarily Unavailable"))
	})
	defer server.Close()

	_, err := client.Drivers(context.Background())
	assert.Error(t, err)
}

func TestClientCallNetworkFailure(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // refuse all connections

	_, err := client.Vehicles(context.Background())
	assert.Error(t, err)
}

func TestClientTrailerRequestFormats(t *testing.T) {
	var bodies []string

	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(body))

		w.Write([]byte("<ResponseCarretas></ResponseCarretas>"))
	})
	defer server.Close()

	for format := 0; format < TrailerRequestFormats; format++ {
		_, err := client.Trailers(context.Background(), format)
		require.NoError(t, err)
	}

	require.Len(t, bodies, 2)
	assert.Contains(t, bodies[0], "<login>operator</login>")
	assert.Contains(t, bodies[1], `login="operator"`)
}
