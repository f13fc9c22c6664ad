package main

import (
	"context"
	"embed"

	"github.com/bradleybauer/mtgslop/internal/app"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

var assetsFS embed.FS

func main() {
	a := app.New()
	if err := wails.Run(buildRootAppOptions(a)); err != nil {
		println("Error:", err.Error())
	}
}

func buildRootAppOptions(a *app.App) *options.App {
	return &options.App{
		Title:  "mtgslop",
		Width:  1280,
		Height: 860,
		AssetServer: &assetserver.Options{
			Assets: assetsFS,
		},
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
