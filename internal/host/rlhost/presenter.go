//go:build raylib

package rlhost

import (
	"context"
	"fmt"
	"image/color"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mj1618/dashpanel/internal/host"
)

// TargetFPS caps the redraw rate.
const TargetFPS = 30

func init() {
	// raylib must stay on the thread that created the window.
	runtime.LockOSThread()
	host.NewPresenterFunc = func() (host.Presenter, error) {
		return &Presenter{}, nil
	}
}

// Presenter shows one window at a time.
type Presenter struct{}

// Present opens a window of win's size and redraws r every frame until the
// window is closed or ctx is done.
func (p *Presenter) Present(ctx context.Context, win host.Window, r host.Renderer) error {
	w, h := win.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid window size %dx%d", w, h)
	}

	frame, err := r.Render()
	if err != nil {
		return err
	}

	rl.InitWindow(int32(w), int32(h), win.Title())
	defer rl.CloseWindow()
	rl.SetTargetFPS(TargetFPS)
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib window is not ready")
	}

	img := rl.NewImageFromImage(frame)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)

	pixels := make([]color.RGBA, w*h)
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		frame, err = r.Render()
		if err != nil {
			return err
		}
		copyPixels(pixels, frame.Pix, frame.Stride, w, h)
		rl.UpdateTexture(tex, pixels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexture(tex, 0, 0, rl.White)
		rl.EndDrawing()
	}
	return nil
}
