package server

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/host/headless"
	"github.com/mj1618/dashpanel/internal/layout"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/output"
	"github.com/mj1618/dashpanel/internal/panel"
	"github.com/mj1618/dashpanel/internal/props"
	"github.com/mj1618/dashpanel/internal/shape"
	"github.com/mj1618/dashpanel/internal/snapshot"
)

// Default canvas size for the shape tool.
const defaultShapeSize = 100

var errNoLayout = errors.New("path or layout parameter is required")

// loadLayout resolves the document named by the path or layout arguments.
// File documents go through the cache.
func (s *Server) loadLayout(params map[string]interface{}) (*model.LayoutSpec, string, error) {
	if path := StringParam(params, "path", ""); path != "" {
		doc, err := s.cache.Load(path)
		return doc, path, err
	}
	text := StringParam(params, "layout", "")
	if strings.TrimSpace(text) == "" {
		return nil, "", errNoLayout
	}
	format, err := layout.ParseFormat(StringParam(params, "layout-format", string(layout.FormatJSON)))
	if err != nil {
		return nil, "", err
	}
	doc, err := layout.Parse([]byte(text), format)
	return doc, "", err
}

func (s *Server) rasterizer(params map[string]interface{}) (headless.Rasterizer, error) {
	name := StringParam(params, "rasterizer", "")
	if name == "" {
		return s.cfg.Rasterizer, nil
	}
	return headless.ParseRasterizer(name)
}

// assemble builds doc on a headless toolkit without rasterizing it.
func (s *Server) assemble(doc *model.LayoutSpec) (*panel.Report, error) {
	tk := headless.New(headless.Options{Rasterizer: s.cfg.Rasterizer})
	return panel.Build(doc, tk, panel.Options{Logger: s.cfg.Logger})
}

func imageResult(data []byte, format string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(data),
				MIMEType: snapshot.MIMEType(format),
			},
		},
	}
}

func (s *Server) handleRender(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	doc, _, err := s.loadLayout(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raster, err := s.rasterizer(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := snapshot.ParseFormat(StringParam(params, "format", snapshot.FormatPNG))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := snapshot.ParseLabelMode(StringParam(params, "annotate", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc = doc.Select(model.ExpandKinds(StringsParam(params, "type")), StringsParam(params, "id"))
	res, err := snapshot.Layout(doc, snapshot.Options{
		Rasterizer: raster,
		Logger:     s.cfg.Logger,
		Width:      IntParam(params, "width", 0),
		Height:     IntParam(params, "height", 0),
		Scale:      FloatParam(params, "scale", 1),
		Annotate:   mode,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := snapshot.Encode(res.Image, format, IntParam(params, "quality", snapshot.DefaultQuality))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return imageResult(data, format), nil
}

func (s *Server) handleInspect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	doc, source, err := s.loadLayout(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	kinds := model.ExpandKinds(StringsParam(params, "type"))
	var bbox *[4]int
	if v := StringParam(params, "bbox", ""); v != "" {
		b, err := host.ParseBBox(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		arr := b.Array()
		bbox = &arr
	}
	format := output.Format(StringParam(params, "output", string(output.FormatYAML)))

	rep, err := s.assemble(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := output.Sprint(output.NewInspectResult(source, rep, rep.Filter(kinds, bbox)), format, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleStylesheet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, _, err := s.loadLayout(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rep, err := s.assemble(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(rep.Stylesheet), nil
}

func (s *Server) handleShape(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	kind := model.Kind(StringParam(params, "type", ""))
	if !kind.IsShape() {
		return mcp.NewToolResultError("type must be one of Line, Rect, Ellipse, Triangle, Diamond, Arrow, Star"), nil
	}
	w := IntParam(params, "width", defaultShapeSize)
	h := IntParam(params, "height", defaultShapeSize)
	bag := props.FromMap(MapParam(params, "props"))

	if BoolParam(params, "ops", false) {
		rec := shape.Render(kind, w, h, bag)
		text, err := output.Sprint(output.NewShapeResult(kind, w, h, rec), output.FormatYAML, false)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}

	raster, err := s.rasterizer(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	img, err := snapshot.Shape(kind, w, h, bag, raster)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := snapshot.Encode(img, snapshot.FormatPNG, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return imageResult(data, snapshot.FormatPNG), nil
}
