package main

import (
	"context"

	"github.com/bradleybauer/mtgslop/internal/app"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
)

func main() {
	a := app.New()
	if err := wails.Run(buildAppOptions(a)); err != nil {
		println("Error:", err.Error())
	}
}

func buildAppOptions(a *app.App) *options.App {
	return &options.App{
		Title:  "mtgslop",
		Width:  1280,
		Height: 860,
		OnStartup: func(ctx context.Context) {
			a.Startup(ctx)
		},
		OnShutdown: func(ctx context.Context) {
			a.Shutdown(ctx)
		},
		Bind: []interface{}{
			a,
		},
	}
}
