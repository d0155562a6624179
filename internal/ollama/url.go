package ollama

import "strings"

// DefaultBaseURL is the address a local Ollama server listens on.
const DefaultBaseURL = "http://127.0.0.1:11434"

// Endpoint names a route under the Ollama /api prefix.
type Endpoint string

const (
	EndpointTags     Endpoint = "tags"
	EndpointChat     Endpoint = "chat"
	EndpointGenerate Endpoint = "generate"
	EndpointShow     Endpoint = "show"
	EndpointPull     Endpoint = "pull"
	EndpointDelete   Endpoint = "delete"
	EndpointPS       Endpoint = "ps"
	EndpointVersion  Endpoint = "version"
	EndpointEmbed    Endpoint = "embed"
)

// Endpoints lists the routes the widget calls, in menu order.
var Endpoints = []Endpoint{
	EndpointTags,
	EndpointChat,
	EndpointGenerate,
	EndpointShow,
	EndpointPull,
	EndpointDelete,
	EndpointPS,
	EndpointVersion,
	EndpointEmbed,
}

// URL returns the API URL of e on the server at base.
func (e Endpoint) URL(base string) string {
	return ServerURL(base, string(e))
}

// ServerURL joins base and endpoint under the /api/ prefix. The prefix is
// always present, so an empty endpoint yields a trailing slash.
func ServerURL(base, endpoint string) string {
	return normalizeBase(base) + "/api/" + strings.TrimLeft(endpoint, "/")
}

// BuildServerURL joins base and endpoint with a single slash and no API
// prefix. An empty endpoint returns the bare base.
func BuildServerURL(base, endpoint string) string {
	base = normalizeBase(base)
	endpoint = strings.TrimLeft(endpoint, "/")
	if endpoint == "" {
		return base
	}
	return base + "/" + endpoint
}

func normalizeBase(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}
