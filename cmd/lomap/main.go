// lomap keeps a personal map of places in a pod container the user
// owns. This is the composition root: every adapter is constructed
// here and handed to the cli package through its Set*Config seams.
package main

import (
	"fmt"
	"os"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driven/config/file"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driven/pod"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driven/session"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/cli"
	"github.com/lomap-labs/lomap-cli/internal/core/services"
	"github.com/lomap-labs/lomap-cli/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

func main() {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	catalog, err := sqlite.NewCatalog("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening place catalog: %v\n", err)
		os.Exit(1)
	}
	defer catalog.Close()

	// The pod root defaults to the server URL; some providers host the
	// storage under a separate root, hence the dedicated key.
	podRoot := cfg.GetString(file.KeyPodRoot)
	if podRoot == "" {
		podRoot = cfg.GetString(file.KeyPodServer)
	}
	sess := session.NewWithToken(cfg.GetString(file.KeyWebID), podRoot, cfg.GetString(file.KeyToken))
	if !sess.Valid() {
		logger.Debug("main: no pod credential configured, run 'lomap auth login'")
	}

	resolver := pod.NewResolver(sess.PodRoot())
	store := pod.NewStore(pod.NewClient(sess))

	mapService := services.NewMapService(store, resolver)
	placeService := services.NewPlaceService(store, sess, resolver).WithCatalog(catalog)

	cli.SetVersion(version)
	cli.SetAuthConfig(&cli.AuthConfig{Config: cfg})
	cli.SetServeConfig(&cli.ServeConfig{
		Catalog: services.NewCatalogService(catalog),
		Addr:    cfg.GetString(file.KeyListenAddr),
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		MapService:   mapService,
		PlaceService: placeService,
		Categories:   cfg.GetStrings(file.KeyCategories),
		CenterLat:    cfg.GetFloat(file.KeyCenterLat),
		CenterLng:    cfg.GetFloat(file.KeyCenterLng),
	})

	cli.Execute()
}
