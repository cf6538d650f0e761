package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocPathsLiveUnderBasePath(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "/api", parsed.BasePath)
	assert.Contains(t, parsed.Paths, "/auctions")
	assert.Contains(t, parsed.Paths, "/auctions/{id}")
	for path := range parsed.Paths {
		assert.True(t, strings.HasPrefix(path, "/auctions"), "path %s is not served under %s", path, parsed.BasePath)
	}
}
