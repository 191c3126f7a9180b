package host

import (
	"context"
	"errors"
	"image"
)

// Renderer produces the current pixels of a window.
type Renderer interface {
	Render() (*image.RGBA, error)
}

// Presenter shows a window on screen until the user closes it or ctx is
// cancelled.
type Presenter interface {
	Present(ctx context.Context, win Window, r Renderer) error
}

// ErrUnsupported is returned when no live presenter is compiled in.
var ErrUnsupported = errors.New("no live window presenter in this build; rebuild with -tags raylib")

// NewPresenterFunc is set by presenter packages via init().
// See internal/host/rlhost for the raylib registration.
var NewPresenterFunc func() (Presenter, error)

// NewPresenter returns the registered presenter.
func NewPresenter() (Presenter, error) {
	if NewPresenterFunc == nil {
		return nil, ErrUnsupported
	}
	return NewPresenterFunc()
}
