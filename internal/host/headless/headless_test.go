package headless

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/dashpanel/internal/draw"
	"github.com/mj1618/dashpanel/internal/host"
)

func fillCanvas(r, g, b float64) host.DrawFunc {
	return func(ctx draw.Context, w, h int) {
		ctx.SetSourceRGB(r, g, b)
		ctx.MoveTo(0, 0)
		ctx.LineTo(float64(w), 0)
		ctx.LineTo(float64(w), float64(h))
		ctx.LineTo(0, float64(h))
		ctx.ClosePath()
		ctx.Fill()
	}
}

func newWindow(t *testing.T, tk *Toolkit, w, h int) (*Window, host.Container) {
	t.Helper()
	win, ok := tk.NewWindow(host.WindowOptions{Title: "test", Width: w, Height: h}).(*Window)
	require.True(t, ok)
	fixed := tk.NewFixed()
	win.SetChild(fixed)
	return win, fixed
}

func TestParseStylesheet(t *testing.T) {
	sheet, err := ParseStylesheet(`
window {
  background-color: #112233;
}

#a {
  color: red;
  font-size: 14px;
}

#a {
  color: #00ff00;
}

#b, #c {
  padding: 4px;
}
`)
	require.NoError(t, err)
	assert.Equal(t, 4, sheet.Selectors())
	assert.Equal(t, "#112233", sheet.Lookup("window")["background-color"])
	assert.Equal(t, "#00ff00", sheet.ForName("a")["color"])
	assert.Equal(t, "14px", sheet.ForName("a")["font-size"])
	assert.Equal(t, "4px", sheet.ForName("c")["padding"])
	assert.Nil(t, sheet.ForName(""))
	assert.Nil(t, sheet.ForName("missing"))
}

func TestParseStylesheet_Empty(t *testing.T) {
	sheet, err := ParseStylesheet("  ")
	require.NoError(t, err)
	assert.Equal(t, 0, sheet.Selectors())

	var nilSheet *Stylesheet
	assert.Nil(t, nilSheet.Lookup("window"))
	assert.Equal(t, 0, nilSheet.Selectors())
}

func TestParseCSSColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGBA
		ok    bool
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}, true},
		{"#FFF", color.RGBA{255, 255, 255, 255}, true},
		{" Red ", color.RGBA{255, 0, 0, 255}, true},
		{"transparent", color.RGBA{}, true},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"notacolor", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseCSSColor(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCSSColor(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDeclarations(t *testing.T) {
	d := Declarations{
		"font-size":    "1.5em",
		"padding":      "4px 8px",
		"margin":       "oops",
		"border-width": "2",
		"font-weight":  "700",
	}
	assert.InDelta(t, 19.5, d.Length("font-size", 0), 1e-9)
	assert.InDelta(t, 4, d.Length("padding", 0), 1e-9)
	assert.InDelta(t, 3, d.Length("margin", 3), 1e-9)
	assert.InDelta(t, 2, d.Length("border-width", 0), 1e-9)
	assert.InDelta(t, 7, d.Length("missing", 7), 1e-9)
	assert.True(t, d.Bold())
	assert.False(t, Declarations{"font-weight": "normal"}.Bold())
	assert.True(t, Declarations{"font-weight": "bold"}.Bold())
}

func TestParseRasterizer(t *testing.T) {
	r, err := ParseRasterizer("")
	require.NoError(t, err)
	assert.Equal(t, RasterGG, r)

	r, err = ParseRasterizer("RasterX")
	require.NoError(t, err)
	assert.Equal(t, RasterX, r)

	_, err = ParseRasterizer("cairo")
	assert.Error(t, err)
}

func TestRender_WindowBackground(t *testing.T) {
	tk := New(Options{})
	win, _ := newWindow(t, tk, 40, 20)

	img, err := win.Render()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	assert.Equal(t, windowBackground, img.RGBAAt(5, 5))

	require.NoError(t, tk.ApplyStylesheet("window {\n  background-color: #102030;\n}\n"))
	img, err = win.Render()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xFF}, img.RGBAAt(5, 5))
}

func TestRender_InvalidSize(t *testing.T) {
	tk := New(Options{})
	win := tk.NewWindow(host.WindowOptions{Width: 0, Height: 10}).(*Window)
	_, err := win.Render()
	assert.Error(t, err)
}

func TestRender_CanvasRedrawsEveryTime(t *testing.T) {
	for _, raster := range []Rasterizer{RasterGG, RasterX} {
		t.Run(string(raster), func(t *testing.T) {
			tk := New(Options{Rasterizer: raster})
			win, fixed := newWindow(t, tk, 60, 40)
			c := tk.NewCanvas(20, 10, fillCanvas(1, 0, 0))
			fixed.Put(c, 10, 20)

			img, err := win.Render()
			require.NoError(t, err)
			assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(20, 25))
			assert.Equal(t, windowBackground, img.RGBAAt(5, 5))
			assert.Equal(t, windowBackground, img.RGBAAt(35, 25))

			_, err = win.Render()
			require.NoError(t, err)
			assert.Equal(t, 2, c.(*Canvas).Redraws())
		})
	}
}

func TestRender_LaterChildrenPaintOver(t *testing.T) {
	tk := New(Options{})
	win, fixed := newWindow(t, tk, 40, 40)
	fixed.Put(tk.NewCanvas(30, 30, fillCanvas(1, 0, 0)), 0, 0)
	fixed.Put(tk.NewCanvas(30, 30, fillCanvas(0, 0, 1)), 10, 10)

	img, err := win.Render()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(20, 20))
}

func TestRender_StyledBackground(t *testing.T) {
	tk := New(Options{})
	win, fixed := newWindow(t, tk, 60, 40)
	lbl := tk.NewLabel(host.LabelOptions{Text: ""})
	lbl.SetName("title")
	lbl.SetSizeRequest(20, 20)
	fixed.Put(lbl, 0, 0)

	require.NoError(t, tk.ApplyStylesheet("#title {\n  background: #ff0000;\n}\n"))
	img, err := win.Render()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(10, 10))
	assert.Equal(t, windowBackground, img.RGBAAt(30, 10))
}

func TestRender_ButtonChrome(t *testing.T) {
	tk := New(Options{})
	win, fixed := newWindow(t, tk, 80, 40)
	b := tk.NewButton(host.ButtonOptions{Label: "Go"})
	b.SetSizeRequest(60, 30)
	fixed.Put(b, 10, 5)

	img, err := win.Render()
	require.NoError(t, err)
	assert.Equal(t, raisedColor, img.RGBAAt(16, 10))
	assert.Equal(t, windowBackground, img.RGBAAt(75, 10))
}

func TestRender_AllControls(t *testing.T) {
	tk := New(Options{})
	win, fixed := newWindow(t, tk, 400, 400)
	widgets := []host.Widget{
		tk.NewButton(host.ButtonOptions{Label: "OK", IconName: "go-next"}),
		tk.NewLabel(host.LabelOptions{Text: "Label", FontSize: 20}),
		tk.NewEntry(host.EntryOptions{Placeholder: "type"}),
		tk.NewCheckbox(host.CheckboxOptions{Label: "Check", Checked: true}),
		tk.NewCaptioned("Power", 8, tk.NewSwitch(host.SwitchOptions{Active: true})),
		tk.NewCombo(host.ComboOptions{Items: []string{"A", "B"}, Active: 1}),
		tk.NewSlider(host.RangeOptions{Min: 0, Max: 100, Step: 1, Value: 50}),
		tk.NewSpin(host.RangeOptions{Min: 0, Max: 1, Step: 0.1, Value: 0.5, Numeric: true}),
		tk.NewImage(host.ImageOptions{AltText: "Image"}),
		tk.NewProgress(host.ProgressOptions{Fraction: 1.7, ShowText: true, Text: "170%"}),
		tk.NewSeparator(host.SeparatorOptions{Orientation: host.Vertical}),
	}
	for i, w := range widgets {
		w.SetSizeRequest(120, 30)
		fixed.Put(w, 10, 10+i*34)
	}
	img, err := win.Render()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 400), img.Bounds())
	assert.Equal(t, windowBackground, img.RGBAAt(300, 300))
}

func TestNewImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dot.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	tk := New(Options{})
	pic := tk.NewImage(host.ImageOptions{FilePath: path}).(*Picture)
	require.NoError(t, pic.LoadErr())
	assert.True(t, pic.Loaded())

	win, fixed := newWindow(t, tk, 40, 40)
	pic.SetSizeRequest(20, 20)
	fixed.Put(pic, 0, 0)
	img, err := win.Render()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(10, 10))

	missing := tk.NewImage(host.ImageOptions{FilePath: filepath.Join(dir, "nope.png"), AltText: "gone"}).(*Picture)
	assert.Error(t, missing.LoadErr())
	assert.False(t, missing.Loaded())
}

func TestComboActiveText(t *testing.T) {
	c := &Combo{ComboOptions: host.ComboOptions{Items: []string{"A", "B"}, Active: 1}}
	assert.Equal(t, "B", c.ActiveText())
	c.Active = -1
	assert.Equal(t, "", c.ActiveText())
	c.Active = 5
	assert.Equal(t, "", c.ActiveText())
}

func TestFitRect(t *testing.T) {
	assert.Equal(t, image.Rect(0, 5, 20, 15), fitRect(image.Rect(0, 0, 40, 20), image.Rect(0, 0, 20, 20)))
	assert.Equal(t, image.Rect(5, 0, 15, 20), fitRect(image.Rect(0, 0, 10, 20), image.Rect(0, 0, 20, 20)))
	assert.True(t, fitRect(image.Rect(0, 0, 0, 5), image.Rect(0, 0, 20, 20)).Empty())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "50", formatValue(50, 1))
	assert.Equal(t, "0.5", formatValue(0.5, 0.1))
	assert.Equal(t, "0.25", formatValue(0.25, 0.05))
	assert.Equal(t, "3", formatValue(3, 0))
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.5, fraction(50, 0, 100))
	assert.Equal(t, 1.0, fraction(150, 0, 100))
	assert.Equal(t, 0.0, fraction(-5, 0, 100))
	assert.Equal(t, 0.0, fraction(5, 10, 10))
}

func TestMeasureText(t *testing.T) {
	w, h := measureText("abc", textStyle{size: glyphHeight})
	assert.Equal(t, 21, w)
	assert.Equal(t, 13, h)

	w, h = measureText("abc", textStyle{size: 26})
	assert.Equal(t, 42, w)
	assert.Equal(t, 26, h)

	w, h = measureText("", textStyle{})
	assert.Zero(t, w)
	assert.Zero(t, h)
}
