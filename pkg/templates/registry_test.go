package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"agents/greeter.tmpl": {Data: []byte("Hello {{.Name}}")},
		"agents/ignored.txt":  {Data: []byte("not a template")},
	}

	reg, err := NewRegistryFromFS(fsys)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"agents/greeter"}, reg.List())

	out, err := reg.Render("agents/greeter", map[string]string{"Name": "world"})
	require.NoError(t, err)
	assert.Equal(t, "Hello world\n", out)

	_, err = reg.GetTemplate("agents/missing")
	assert.Error(t, err)
}

func TestEmbeddedTemplates(t *testing.T) {
	reg := Get()

	ids := reg.List()
	assert.Contains(t, ids, "agents/city_concierge")
	assert.Contains(t, ids, "agents/news_desk")
	assert.Contains(t, ids, "agents/market_summary")

	out, err := reg.Render("agents/city_concierge", map[string]any{
		"AgentName": "city_concierge",
		"Tools": []map[string]string{
			{"Name": "get_weather", "Description": "Current weather in a city"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "city concierge")
	assert.Contains(t, out, "get_weather: Current weather in a city")
}

func TestSummarizerKeepsOutputKeyPlaceholder(t *testing.T) {
	// The {research_findings} placeholder is resolved by the agent runtime from
	// session state, not by text/template; it must survive rendering intact.
	out, err := Get().Render("agents/summarizer", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "{research_findings}")
}
