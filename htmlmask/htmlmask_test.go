package htmlmask

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/groupmask"
	"github.com/npillmayer/groupmask/preset"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMasksInputs(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := `<form>
<input name="tel" data-mask="3,4,4" data-mask-separator="-" value="1234567890123">
<input name="card" data-mask-preset="card" value="4111-1111 1111 1111" maxlength="99">
<input name="plain" value="unchanged">
</form>`
	var out bytes.Buffer
	m := Masker{Presets: preset.Defaults()}
	require.NoError(t, m.Apply(strings.NewReader(input), &out))
	html := out.String()
	t.Logf("html = %s", html)
	assert.Contains(t, html, `value="123-4567-8901"`)
	assert.Contains(t, html, `maxlength="13"`)
	assert.Contains(t, html, `value="4111 -111 1111 1111"`) // '-' is content for a space separated mask
	assert.Contains(t, html, `value="unchanged"`)
	assert.NotContains(t, html, `maxlength="99"`)
	assert.Equal(t, 2, strings.Count(html, "maxlength="))
}

func TestApplyCardWithSpaces(t *testing.T) {
	var out bytes.Buffer
	m := Masker{Presets: preset.Defaults()}
	in := `<input name="card" data-mask-preset="card" value="4111111111111111">`
	require.NoError(t, m.Apply(strings.NewReader(in), &out))
	assert.Contains(t, out.String(), `value="4111 1111 1111 1111"`)
	assert.Contains(t, out.String(), `maxlength="19"`)
}

func TestApplyReportsInvalidDeclarations(t *testing.T) {
	input := `<input name="a" data-mask="3,0" value="123">` +
		`<input name="b" data-mask-preset="nope" value="123">` +
		`<input name="c" data-mask="2" data-mask-separator="--" value="123">` +
		`<input name="d" data-mask="2,2" value="1234">`
	var out bytes.Buffer
	err := Masker{Presets: preset.Defaults()}.Apply(strings.NewReader(input), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, groupmask.ErrInvalidRule)
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.ErrorIs(t, err, groupmask.ErrIllegalArguments)
	assert.Contains(t, out.String(), `value="12 34"`)
	assert.Contains(t, out.String(), `value="123"`)
}

func TestPresetWithoutRegistry(t *testing.T) {
	var out bytes.Buffer
	err := Masker{}.Apply(strings.NewReader(`<input data-mask-preset="card">`), &out)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestSeparatorAndSegmentationOverride(t *testing.T) {
	var out bytes.Buffer
	in := `<input data-mask-preset="card" data-mask-separator="/" data-mask-segmentation="graphemes" value="12345">`
	require.NoError(t, Masker{Presets: preset.Defaults()}.Apply(strings.NewReader(in), &out))
	assert.Contains(t, out.String(), `value="1234/5"`)
}
