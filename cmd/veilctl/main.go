package main

import (
	"log"

	appcfg "github.com/tfg/veil-companion-go/internal/config"
	"github.com/tfg/veil-companion-go/internal/cli"
	"github.com/tfg/veil-companion-go/internal/msgcat"
	"github.com/tfg/veil-companion-go/internal/obslog"
	"github.com/tfg/veil-companion-go/internal/repository"
	"github.com/tfg/veil-companion-go/internal/session"
	"github.com/tfg/veil-companion-go/internal/veilapi"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}

	cat, err := msgcat.New(cfg.MsgOverrideDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	// Redis keeps the session across runs; without it the session lives only
	// for this invocation.
	var store session.Store
	if cfg.RedisURL != "" {
		rs, err := session.NewRedisStoreURL(cfg.RedisURL, cfg.SessionPrefix)
		if err != nil {
			log.Fatalf("session store error: %v", err)
		}
		defer func() { _ = rs.Close() }()
		store = rs
	} else {
		store = session.NewMemoryStore()
	}

	client := veilapi.NewClient(cfg.BaseURL,
		veilapi.WithTimeout(cfg.HTTPTimeout),
		veilapi.WithTokenSource(store),
	)

	deps := &cli.Deps{
		Auth:    repository.NewAuth(client, store, cat),
		Player:  repository.NewPlayer(client, store, cat),
		Friend:  repository.NewFriend(client, cat),
		Game:    repository.NewGame(client, store, cat),
		Catalog: cat,
	}

	cli.Execute(deps)
}
