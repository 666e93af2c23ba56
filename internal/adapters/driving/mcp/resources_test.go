package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestHandleDocumentsResource(t *testing.T) {
	ports, _, _ := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	res, err := server.handleDocumentsResource(context.Background(), readRequest(documentsURI))

	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)

	var docs []map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &docs))
	require.Len(t, docs, 3)
	assert.Equal(t, "/", docs[0]["href"])
	assert.Equal(t, "docsearch://documents/", docs[0]["resource"])
	assert.Equal(t, "Agents", docs[1]["title"])
	assert.Equal(t, "docsearch://documents/docs/concepts/agents", docs[1]["resource"])
}

func TestHandleDocumentsResource_Error(t *testing.T) {
	ports, _, corpus := newTestPorts()
	corpus.err = errors.New("disk gone")
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, err = server.handleDocumentsResource(context.Background(), readRequest(documentsURI))

	assert.ErrorContains(t, err, "listing documents")
}

func TestHandleDocumentContentResource(t *testing.T) {
	ports, _, _ := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	uri := "docsearch://documents/docs/observability/xray"
	res, err := server.handleDocumentContentResource(context.Background(), readRequest(uri))

	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, uri, res.Contents[0].URI)
	assert.Equal(t, "text/plain", res.Contents[0].MIMEType)
	assert.Equal(t, "# Tracing with xray\n\nSend traces to xray.", res.Contents[0].Text)
}

func TestHandleDocumentContentResource_Root(t *testing.T) {
	ports, _, _ := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	res, err := server.handleDocumentContentResource(context.Background(), readRequest("docsearch://documents/"))

	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, "# Home")
}

func TestHandleDocumentContentResource_NotFound(t *testing.T) {
	ports, _, _ := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	for _, uri := range []string{"docsearch://documents/docs/missing", "other://documents/docs"} {
		_, err := server.handleDocumentContentResource(context.Background(), readRequest(uri))
		assert.Error(t, err, uri)
	}
}

func TestDocumentURIRoundTrip(t *testing.T) {
	tests := []struct {
		href string
		uri  string
	}{
		{href: "/", uri: "docsearch://documents/"},
		{href: "/docs/concepts/agents", uri: "docsearch://documents/docs/concepts/agents"},
		{href: "/blog/introducing", uri: "docsearch://documents/blog/introducing"},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.uri, documentURI(tt.href))
			href, ok := extractHref(tt.uri)
			assert.True(t, ok)
			assert.Equal(t, tt.href, href)
		})
	}

	_, ok := extractHref("docsearch://documents")
	assert.False(t, ok)
}
