package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/dashpanel/internal/layout"
	"github.com/mj1618/dashpanel/internal/model"
)

const sampleLayout = `{
  "window": {"title": "Ops", "width": 200, "height": 120, "background_color": "#202020"},
  "widgets": [
    {"id": "title", "type": "Label", "geometry": {"x": 10, "y": 10, "width": 80, "height": 20},
     "props": {"text": "Status"}, "style": {"color": "#ffffff", "font_size": "14"}},
    {"id": "led", "type": "Ellipse", "geometry": {"x": 100, "y": 10, "width": 20, "height": 20},
     "props": {"fill_color": "#00FF00"}},
    {"type": "Gauge"}
  ]
}`

func newTestServer() *Server {
	return New(Config{
		Transport: "stdio",
		CacheTTL:  time.Minute,
		Logger:    slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panel.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLayoutCache_HitWithinTTL(t *testing.T) {
	path := writeLayout(t, sampleLayout)
	c := NewLayoutCache(time.Minute)
	loads := 0
	c.load = func(p string) (*model.LayoutSpec, error) {
		loads++
		return layout.Load(p)
	}

	first, err := c.Load(path)
	require.NoError(t, err)
	second, err := c.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, c.Len())
}

func TestLayoutCache_EditedFileReloads(t *testing.T) {
	path := writeLayout(t, sampleLayout)
	c := NewLayoutCache(time.Minute)

	first, err := c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ops", first.Window.Title)

	require.NoError(t, os.WriteFile(path, []byte(`{"window": {"title": "Edited layout"}}`), 0644))
	second, err := c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Edited layout", second.Window.Title)
}

func TestLayoutCache_Disabled(t *testing.T) {
	path := writeLayout(t, sampleLayout)
	c := NewLayoutCache(0)
	_, err := c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLayoutCache_Invalidate(t *testing.T) {
	a := writeLayout(t, sampleLayout)
	b := writeLayout(t, sampleLayout)
	c := NewLayoutCache(time.Minute)
	_, err := c.Load(a)
	require.NoError(t, err)
	_, err = c.Load(b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	c.Invalidate(a)
	assert.Equal(t, 1, c.Len())
	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())
}

func TestLayoutCache_MissingFile(t *testing.T) {
	c := NewLayoutCache(time.Minute)
	_, err := c.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	params := map[string]interface{}{
		"s":    "text",
		"n":    float64(12.7),
		"i":    3,
		"b":    true,
		"list": []interface{}{"Rect", 4, "", "shape"},
		"csv":  "Rect, Label,,",
		"obj":  map[string]interface{}{"k": "v"},
	}

	assert.Equal(t, "text", StringParam(params, "s", "d"))
	assert.Equal(t, "12.7", StringParam(params, "n", "d"))
	assert.Equal(t, "d", StringParam(params, "missing", "d"))
	assert.Equal(t, 12, IntParam(params, "n", 0))
	assert.Equal(t, 3, IntParam(params, "i", 0))
	assert.Equal(t, 9, IntParam(params, "s", 9))
	assert.Equal(t, 12.7, FloatParam(params, "n", 0))
	assert.Equal(t, 3.0, FloatParam(params, "i", 0))
	assert.Equal(t, 1.0, FloatParam(params, "missing", 1))
	assert.True(t, BoolParam(params, "b", false))
	assert.False(t, BoolParam(params, "s", false))
	assert.Equal(t, []string{"Rect", "shape"}, StringsParam(params, "list"))
	assert.Equal(t, []string{"Rect", "Label"}, StringsParam(params, "csv"))
	assert.Nil(t, StringsParam(params, "missing"))
	assert.Equal(t, "v", MapParam(params, "obj")["k"])
	assert.Nil(t, MapParam(params, "s"))
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer()
	res := call(t, s.handleInspect, map[string]interface{}{"layout": sampleLayout})
	assert.False(t, res.IsError)
	text := textOf(t, res)
	assert.Contains(t, text, "title: Ops")
	assert.Contains(t, text, "id: title")
	assert.Contains(t, text, "id: led")
	assert.Contains(t, text, "type: Gauge")
	assert.Contains(t, text, "style_rules: 2")
}

func TestHandleInspect_Filters(t *testing.T) {
	s := newTestServer()
	path := writeLayout(t, sampleLayout)

	res := call(t, s.handleInspect, map[string]interface{}{"path": path, "type": "shape", "output": "json"})
	text := textOf(t, res)
	assert.Contains(t, text, `"source": "`+path+`"`)
	assert.Contains(t, text, `"id": "led"`)
	assert.NotContains(t, text, `"id": "title"`)

	res = call(t, s.handleInspect, map[string]interface{}{"path": path, "bbox": "0,0,50,50"})
	text = textOf(t, res)
	assert.Contains(t, text, "id: title")
	assert.NotContains(t, text, "id: led")

	res = call(t, s.handleInspect, map[string]interface{}{"path": path, "bbox": "0,0"})
	assert.True(t, res.IsError)
}

func TestHandleStylesheet(t *testing.T) {
	s := newTestServer()
	res := call(t, s.handleStylesheet, map[string]interface{}{"layout": sampleLayout})
	text := textOf(t, res)
	assert.Contains(t, text, "window {\n  background-color: #202020;\n}")
	assert.Contains(t, text, "#title {\n  color: #ffffff;\n  font-size: 14px;\n}")
}

func TestHandleStylesheet_YAMLLayout(t *testing.T) {
	s := newTestServer()
	res := call(t, s.handleStylesheet, map[string]interface{}{
		"layout":        "window:\n  background_color: red\n",
		"layout-format": "yaml",
	})
	assert.Equal(t, "window {\n  background-color: red;\n}\n\n", textOf(t, res))
}

func TestHandlers_MissingLayout(t *testing.T) {
	s := newTestServer()
	for name, h := range map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"render":     s.handleRender,
		"inspect":    s.handleInspect,
		"stylesheet": s.handleStylesheet,
	} {
		res := call(t, h, map[string]interface{}{})
		assert.True(t, res.IsError, name)
	}
}

func TestHandleRender(t *testing.T) {
	s := newTestServer()
	res := call(t, s.handleRender, map[string]interface{}{"layout": sampleLayout, "scale": 0.5})
	require.False(t, res.IsError)
	ic, ok := res.Content[0].(mcp.ImageContent)
	require.True(t, ok)
	assert.Equal(t, "image/png", ic.MIMEType)

	data, err := base64.StdEncoding.DecodeString(ic.Data)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestHandleRender_BadOptions(t *testing.T) {
	s := newTestServer()
	for _, args := range []map[string]interface{}{
		{"layout": sampleLayout, "rasterizer": "cairo"},
		{"layout": sampleLayout, "format": "gif"},
		{"layout": sampleLayout, "annotate": "boxes"},
		{"layout": sampleLayout, "layout-format": "xml"},
		{"layout": "[1, 2]"},
	} {
		res := call(t, s.handleRender, args)
		assert.True(t, res.IsError, "%v", args)
	}
}

func TestHandleShape_Ops(t *testing.T) {
	s := newTestServer()
	res := call(t, s.handleShape, map[string]interface{}{
		"type":   "Rect",
		"width":  float64(40),
		"height": float64(20),
		"ops":    true,
		"props":  map[string]interface{}{"fill_color": "#FF0000"},
	})
	require.False(t, res.IsError)
	text := textOf(t, res)
	assert.Contains(t, text, "type: Rect")
	assert.Contains(t, text, "width: 40")
	assert.Contains(t, text, "op: fill_preserve")
}

func TestHandleShape_Image(t *testing.T) {
	s := newTestServer()
	res := call(t, s.handleShape, map[string]interface{}{"type": "Star", "rasterizer": "rasterx"})
	require.False(t, res.IsError)
	ic, ok := res.Content[0].(mcp.ImageContent)
	require.True(t, ok)
	data, err := base64.StdEncoding.DecodeString(ic.Data)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, defaultShapeSize, img.Bounds().Dx())
}

func TestHandleShape_RejectsControls(t *testing.T) {
	s := newTestServer()
	res := call(t, s.handleShape, map[string]interface{}{"type": "Button"})
	assert.True(t, res.IsError)
	res = call(t, s.handleShape, map[string]interface{}{"type": "Rect", "width": float64(0)})
	assert.True(t, res.IsError)
}

func TestServe_UnsupportedTransport(t *testing.T) {
	s := New(Config{Transport: "carrier-pigeon"})
	assert.ErrorContains(t, s.Serve(), "unsupported transport")
}

func TestHandleRender_SelectsElements(t *testing.T) {
	s := newTestServer()
	pixelAt := func(args map[string]interface{}) color.RGBA {
		res := call(t, s.handleRender, args)
		require.False(t, res.IsError)
		data, err := base64.StdEncoding.DecodeString(res.Content[0].(mcp.ImageContent).Data)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		return color.RGBAModel.Convert(img.At(110, 20)).(color.RGBA)
	}

	assert.Equal(t, color.RGBA{0, 255, 0, 255}, pixelAt(map[string]interface{}{"layout": sampleLayout, "type": "shape"}))
	assert.Equal(t, color.RGBA{0x20, 0x20, 0x20, 0xFF}, pixelAt(map[string]interface{}{"layout": sampleLayout, "id": "title"}))
}
