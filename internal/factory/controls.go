package factory

import (
	"fmt"

	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/model"
)

// Control defaults.
const (
	DefaultButtonLabel   = "Button"
	DefaultLabelText     = "Label"
	DefaultCheckboxLabel = "Checkbox"
	DefaultAltText       = "Image"
	DefaultSliderValue   = 50.0
	DefaultRangeMax      = 100.0
	DefaultRangeStep     = 1.0

	// SwitchCaptionSpacing separates a switch from its caption.
	SwitchCaptionSpacing = 8
)

func buildButton(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	return tk.NewButton(host.ButtonOptions{
		Label:    p.String("label", DefaultButtonLabel),
		IconName: p.String("icon_name", ""),
	})
}

func buildLabel(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	size := p.Int("font_size", 0)
	if size < 0 {
		size = 0
	}
	return tk.NewLabel(host.LabelOptions{
		Text:     p.String("label", DefaultLabelText),
		FontSize: size,
	})
}

func buildEntry(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	return tk.NewEntry(host.EntryOptions{
		Text:        p.String("text", ""),
		Placeholder: p.String("placeholder", ""),
	})
}

func buildCheckbox(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	return tk.NewCheckbox(host.CheckboxOptions{
		Label:   p.String("label", DefaultCheckboxLabel),
		Checked: p.Bool("checked", false),
	})
}

// buildSwitch pairs the switch with a leading caption when a non-empty
// label is given.
func buildSwitch(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	sw := tk.NewSwitch(host.SwitchOptions{Active: p.Bool("active", false)})
	label := p.String("label", "")
	if label == "" {
		return sw
	}
	return tk.NewCaptioned(label, SwitchCaptionSpacing, sw)
}

// buildCombo selects nothing when active_index is out of range.
func buildCombo(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	items := p.Strings("items")
	active := p.Int("active_index", 0)
	if active < 0 || active >= len(items) {
		active = -1
	}
	return tk.NewCombo(host.ComboOptions{Items: items, Active: active})
}

func rangeOptions(spec *model.ElementSpec, defValue float64) host.RangeOptions {
	p := spec.Props
	return host.RangeOptions{
		Min:   p.Number("min", 0),
		Max:   p.Number("max", DefaultRangeMax),
		Step:  p.Number("step", DefaultRangeStep),
		Value: p.Number("value", defValue),
	}
}

func buildSlider(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	opts := rangeOptions(spec, DefaultSliderValue)
	opts.DrawValue = false
	return tk.NewSlider(opts)
}

func buildSpin(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	opts := rangeOptions(spec, 0)
	opts.Numeric = true
	return tk.NewSpin(opts)
}

func buildImage(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	return tk.NewImage(host.ImageOptions{
		FilePath: p.String("file_path", ""),
		AltText:  p.String("alt_text", DefaultAltText),
	})
}

// ProgressText formats a progress fraction as a whole percentage.
func ProgressText(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}

// buildProgress passes value through unclamped.
func buildProgress(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	p := spec.Props
	opts := host.ProgressOptions{
		Fraction: p.Number("value", 0),
		ShowText: p.Bool("show_text", false),
	}
	if opts.ShowText {
		opts.Text = ProgressText(opts.Fraction)
	}
	return tk.NewProgress(opts)
}

func buildSeparator(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	return tk.NewSeparator(host.SeparatorOptions{
		Orientation: host.ParseOrientation(spec.Props.String("orientation", "horizontal")),
	})
}
