package ollama

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerURL(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		endpoint string
		want     string
	}{
		{name: "default base", base: "", endpoint: "tags", want: "http://127.0.0.1:11434/api/tags"},
		{name: "slashes trimmed", base: "http://host:1/", endpoint: "/tags", want: "http://host:1/api/tags"},
		{name: "repeated slashes", base: "http://host:1///", endpoint: "///chat", want: "http://host:1/api/chat"},
		{name: "empty endpoint keeps prefix", base: "http://host:1", endpoint: "", want: "http://host:1/api/"},
		{name: "both empty", base: "", endpoint: "", want: "http://127.0.0.1:11434/api/"},
		{name: "nested endpoint", base: "http://host", endpoint: "blobs/sha256", want: "http://host/api/blobs/sha256"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ServerURL(tc.base, tc.endpoint)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, ServerURL(tc.base, tc.endpoint))
		})
	}
}

func TestBuildServerURL(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		endpoint string
		want     string
	}{
		{name: "empty endpoint", base: "http://host/", endpoint: "", want: "http://host"},
		{name: "default base", base: "", endpoint: "ping", want: "http://127.0.0.1:11434/ping"},
		{name: "slash only endpoint", base: "http://host", endpoint: "///", want: "http://host"},
		{name: "leading slashes", base: "http://host//", endpoint: "//api/tags", want: "http://host/api/tags"},
		{name: "default only", base: "", endpoint: "", want: "http://127.0.0.1:11434"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildServerURL(tc.base, tc.endpoint))
		})
	}
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:11434/api/version", EndpointVersion.URL(""))
	assert.Equal(t, "http://box:8080/api/tags", EndpointTags.URL("http://box:8080/"))
	assert.Len(t, Endpoints, 9)
}
