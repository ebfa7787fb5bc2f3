// Package api exposes the window manager control surface over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/ItsNotGoodName/x-tagwm/internal/build"
	"github.com/ItsNotGoodName/x-tagwm/internal/layout"
	"github.com/ItsNotGoodName/x-tagwm/internal/wm"
	"github.com/ItsNotGoodName/x-tagwm/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/sse"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(man *wm.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())

	register(humachi.New(r, huma.DefaultConfig("x-tagwm", build.Current.Version)), man)

	return r
}

type (
	StateOutput struct {
		Body wm.State
	}
	LayoutsOutput struct {
		Body struct {
			Layouts []string `json:"layouts"`
		}
	}
	BuildOutput struct {
		Body build.Build
	}
)

func register(api huma.API, man *wm.Manager) {
	huma.Get(api, "/api/state", func(ctx context.Context, input *struct{}) (*StateOutput, error) {
		return &StateOutput{Body: man.State()}, nil
	})

	huma.Get(api, "/api/layouts", func(ctx context.Context, input *struct{}) (*LayoutsOutput, error) {
		res := &LayoutsOutput{}
		res.Body.Layouts = layout.Names()
		return res, nil
	})

	huma.Get(api, "/api/build", func(ctx context.Context, input *struct{}) (*BuildOutput, error) {
		return &BuildOutput{Body: build.Current}, nil
	})

	huma.Post(api, "/api/tags/{uuid}/layout", func(ctx context.Context, input *struct {
		UUID string `path:"uuid"`
		Body struct {
			Layout string `json:"layout"`
		}
	}) (*struct{}, error) {
		if !layout.Valid(input.Body.Layout) {
			return nil, huma.Error422UnprocessableEntity("unknown layout")
		}
		if err := findTag(man, input.UUID); err != nil {
			return nil, err
		}
		return &struct{}{}, man.Send(ctx, wm.CommandSetLayout{TagUUID: input.UUID, Layout: input.Body.Layout})
	})

	huma.Post(api, "/api/tags/{uuid}/flip", func(ctx context.Context, input *struct {
		UUID string `path:"uuid"`
		Body struct {
			Horizontal bool `json:"horizontal"`
			Vertical   bool `json:"vertical"`
		}
	}) (*struct{}, error) {
		if err := findTag(man, input.UUID); err != nil {
			return nil, err
		}
		return &struct{}{}, man.Send(ctx, wm.CommandToggleFlip{
			TagUUID:    input.UUID,
			Horizontal: input.Body.Horizontal,
			Vertical:   input.Body.Vertical,
		})
	})

	huma.Post(api, "/api/tags/{uuid}/focus", func(ctx context.Context, input *struct {
		UUID string `path:"uuid"`
	}) (*struct{}, error) {
		if err := findTag(man, input.UUID); err != nil {
			return nil, err
		}
		return &struct{}{}, man.Send(ctx, wm.CommandFocusTag{TagUUID: input.UUID})
	})

	sse.Register(api, huma.Operation{
		OperationID: "events",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Stream retile and tag focus events",
	}, map[string]any{
		"retiled":     wm.EventRetiled{},
		"tag_focused": wm.EventTagFocused{},
	}, func(ctx context.Context, input *struct{}, send sse.Sender) {
		retiledC, unsubRetiled := wm.Retiled.Subscribe(ctx)
		defer unsubRetiled()
		focusedC, unsubFocused := wm.TagFocused.Subscribe(ctx)
		defer unsubFocused()

		for {
			select {
			case <-ctx.Done():
				return
			case event := <-retiledC:
				if err := send.Data(event); err != nil {
					return
				}
			case event := <-focusedC:
				if err := send.Data(event); err != nil {
					return
				}
			}
		}
	})
}

func findTag(man *wm.Manager, tagUUID string) error {
	for _, t := range man.State().Tags {
		if t.UUID == tagUUID {
			return nil
		}
	}
	return huma.Error404NotFound("tag not found")
}
