package cmd

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/host/headless"
	"github.com/mj1618/dashpanel/internal/layout"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/props"
)

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// addLayoutFlags registers the flags that control how a layout argument is read.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().String("layout-format", "", "Layout encoding when reading stdin or a file without extension: json, yaml, toml")
}

// loadLayoutArg decodes the document named by args[0]. "-" reads stdin.
// With no argument the result is nil, which assembles an empty panel.
func loadLayoutArg(cmd *cobra.Command, args []string) (*model.LayoutSpec, error) {
	if len(args) == 0 {
		return nil, nil
	}
	path := args[0]
	formatFlag, _ := cmd.Flags().GetString("layout-format")

	if path == "-" || formatFlag != "" {
		if formatFlag == "" {
			formatFlag = string(layout.FormatJSON)
		}
		format, err := layout.ParseFormat(formatFlag)
		if err != nil {
			return nil, err
		}
		var data []byte
		if path == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
		return layout.Parse(data, format)
	}
	return layout.Load(path)
}

// getRasterizer reads the --rasterizer flag.
func getRasterizer(cmd *cobra.Command) (headless.Rasterizer, error) {
	name, _ := cmd.Flags().GetString("rasterizer")
	return headless.ParseRasterizer(name)
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseKindsFlag splits a comma-separated --type value and expands meta kinds.
func parseKindsFlag(s string) []model.Kind {
	names := splitList(s)
	if len(names) == 0 {
		return nil
	}
	return model.ExpandKinds(names)
}

// parseBBoxFlag converts a --bbox value to the [x, y, w, h] form used by
// panel.Report.Filter. An empty value means no filter.
func parseBBoxFlag(s string) (*[4]int, error) {
	if s == "" {
		return nil, nil
	}
	b, err := host.ParseBBox(s)
	if err != nil {
		return nil, err
	}
	arr := b.Array()
	return &arr, nil
}

// parsePropFlags turns repeated key=value flags into a property bag.
// Values that parse as numbers or booleans are stored as such; a value
// containing commas becomes an array of strings.
func parsePropFlags(pairs []string) (props.Bag, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	bag := make(props.Bag, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q: expected key=value", pair)
		}
		bag[key] = propValue(value)
	}
	return bag, nil
}

func propValue(s string) props.Value {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if i, err := strconv.Atoi(s); err == nil {
			return props.IntVal(i)
		}
		return props.Num(n)
	}
	switch s {
	case "true":
		return props.BoolVal(true)
	case "false":
		return props.BoolVal(false)
	}
	if strings.Contains(s, ",") {
		var items []props.Value
		for _, item := range strings.Split(s, ",") {
			items = append(items, props.Str(strings.TrimSpace(item)))
		}
		return props.List(items...)
	}
	return props.Str(s)
}

// writeImage writes data to path, or to w as base64 when path is empty.
func writeImage(w io.Writer, data []byte, path string) error {
	if path != "" {
		return os.WriteFile(path, data, 0644)
	}

	// Default: write base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := encoder.Write(data); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
