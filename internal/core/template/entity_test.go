package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadmail.app/pkg/errors"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&#039;s&lt;/a&gt;", EscapeHTML(`<a href="x">Tom & Jerry's</a>`))
	assert.Equal(t, "&amp;amp;", EscapeHTML("&amp;"))
	assert.Equal(t, "plain", EscapeHTML("plain"))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, Dash, OrDash(""))
	assert.Equal(t, Dash, OrDash("  \t"))
	assert.Equal(t, "x", OrDash("x"))
}

func TestDecodeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\n", DecodeNewlines(`a\nb\n`))
	assert.Equal(t, "a\nb", DecodeNewlines("a\nb"))
}

func TestSetIDFromString(t *testing.T) {
	assert.Equal(t, SetOrderNotification, SetIDFromString("order_notification"))
	assert.Equal(t, SetClientAutoreply, SetIDFromString(" CLIENT_AUTOREPLY "))
	assert.Equal(t, SetUnknown, SetIDFromString("newsletter"))
	assert.False(t, SetUnknown.IsValid())

	data, err := json.Marshal(SetClientAutoreply)
	require.NoError(t, err)
	assert.Equal(t, `"client_autoreply"`, string(data))
}

func TestFromModeUnmarshalText(t *testing.T) {
	var m FromMode
	require.NoError(t, m.UnmarshalText([]byte("System")))
	assert.Equal(t, FromModeSystem, m)

	require.NoError(t, m.UnmarshalText([]byte("bogus")))
	assert.False(t, m.IsValid())

	text, err := FromModeClient.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "client", string(text))
}

func TestOrderNotificationVars(t *testing.T) {
	vars := OrderNotificationFields{Name: "A&B", Company: "", IP: "1.2.3.4", SiteURL: " https://x.io "}.Vars()

	assert.Equal(t, "A&B", vars["name"])
	assert.Equal(t, "A&amp;B", vars["nameHtml"])
	assert.Equal(t, Dash, vars["companyHtml"])
	assert.Equal(t, "1.2.3.4", vars["ipOrDash"])
	assert.Equal(t, "https://x.io", vars["siteUrl"])
}

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry(DefaultSets()...)
	require.NoError(t, err)
	assert.Equal(t, []SetID{SetOrderNotification, SetClientAutoreply}, registry.IDs())

	_, ok := registry.Get(SetClientAutoreply)
	assert.True(t, ok)

	rendered, err := registry.Render(SetClientAutoreply, ClientAutoreplyFields{Name: "Ivan", FromAddress: "bot@doclogic.example"})
	require.NoError(t, err)
	assert.Equal(t, "DocLogic автоматизация <bot@doclogic.example>", rendered.FromHeader)

	_, err = registry.Render(SetUnknown, ClientAutoreplyFields{})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestNewRegistry_Rejects(t *testing.T) {
	_, err := NewRegistry(DefaultOrderNotificationSet(), DefaultOrderNotificationSet())
	assert.True(t, errors.IsValidationError(err))

	_, err = NewRegistry(Set{ID: SetUnknown})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewRegistry(DefaultOrderNotificationSet().WithOverrides(Overrides{From: "{sender}"}))
	assert.True(t, errors.IsMissingPlaceholderError(err))
}
