package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	courier "github.com/reoring/courier"
)

func TestConvertToJSONDropsUnknownKeys(t *testing.T) {
	opts := &RootOptions{Format: "text", DuplicateKeys: "error"}
	out, _, err := execute(NewConvertCommand(opts), nil, "IssueTokenRequest", testdata("token.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"expires_in\": \"2 days\",\n  \"scope\": \"user_id:u1 read:messages\"\n}\n", out)
}

func TestConvertYAMLInputToYAML(t *testing.T) {
	opts := &RootOptions{Format: "text"}
	out, _, err := execute(NewConvertCommand(opts), nil, "IssueTokenRequest", testdata("token.jsonc"), "--to", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"scope": "user_id:u1 read:messages", "expires_in": "2 days"}, got)
}

func TestConvertSendMessage(t *testing.T) {
	opts := &RootOptions{Format: "text"}
	out, _, err := execute(NewConvertCommand(opts), nil, "SendMessageRequest", testdata("send.yaml"))
	require.NoError(t, err)

	var got struct {
		Message struct {
			To      []map[string]any `json:"to"`
			Content map[string]any   `json:"content"`
			Data    map[string]any   `json:"data"`
			Expiry  map[string]any   `json:"expiry"`
			BrandID string           `json:"brand_id"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []map[string]any{{"list_id": "ops"}, {"email": "a@example.com"}}, got.Message.To)
	assert.Equal(t, "Deploy finished", got.Message.Content["title"])
	assert.Equal(t, float64(3), got.Message.Data["replicas"])
	assert.Equal(t, float64(3600000), got.Message.Expiry["expires_in"])
	assert.Equal(t, "B1", got.Message.BrandID)
}

func TestConvertCBORFileRoundTrip(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "token.cbor")
	opts := &RootOptions{Format: "text"}
	out, _, err := execute(NewConvertCommand(opts), nil, "IssueTokenRequest", testdata("token.yaml"), "--to", "cbor", "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	v, err := LoadPayload(data, InputCBOR, courier.DecodeOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"scope": "user_id:u1 read:messages", "expires_in": "2 days"}, v)

	// a CBOR file is accepted as input by extension
	out, _, err = execute(NewCheckCommand(opts), nil, "IssueTokenRequest", dst)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestConvertJSONFormatWrapsValue(t *testing.T) {
	opts := &RootOptions{Format: "json"}
	out, _, err := execute(NewConvertCommand(opts), nil, "IssueTokenRequest", testdata("token.yaml"))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"scope": "user_id:u1 read:messages", "expires_in": "2 days"}, resp.Data)
}

func TestConvertFailures(t *testing.T) {
	opts := &RootOptions{Format: "text"}

	_, _, err := execute(NewConvertCommand(opts), nil, "IssueTokenRequest", testdata("token.json"), "--to", "toml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, _, err := execute(NewConvertCommand(opts), nil, "IssueTokenRequest", testdata("token_bad.json"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "/scope: required")
}

func TestEncodeUnknownTarget(t *testing.T) {
	_, err := Encode(map[string]any{}, "xml")
	assert.Error(t, err)
}
