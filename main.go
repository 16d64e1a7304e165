package main

import (
	"log"
	"os"

	"tableside/config"
	httpapi "tableside/internal/api/http"
	"tableside/internal/catalog"
	"tableside/internal/service"
	"tableside/internal/storage"
	"tableside/internal/store"
)

func main() {
	cfg := config.Load()

	var snapshots storage.SnapshotStore
	switch cfg.StorageBackend {
	case "redis":
		snapshots = storage.NewRedisStore(config.MustInitRedis())
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgresStore(db)
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		snapshots = pg
	case "memory":
		snapshots = storage.NewMemoryStore()
	default:
		snapshots = storage.NewFileStore(cfg.DataDir)
	}

	var publisher store.Publisher
	if cfg.KafkaBroker != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter("order-events"))
	}

	cat := catalog.New(catalog.DefaultMenu())
	cart := store.NewCart("cart", snapshots)
	draft := store.NewCart("draft", snapshots)
	favorites := store.NewFavorites("favorites", snapshots)
	orders := store.NewOrders(store.OrdersConfig{
		Key:               "orders",
		Snapshots:         snapshots,
		Publisher:         publisher,
		TaxRate:           cfg.TaxRate,
		DeliveryFee:       cfg.DeliveryFee,
		DefaultETAMinutes: cfg.DefaultETAMinutes,
		SeedDemoOrders:    true,
	})

	preference := store.NewStaticPreference(os.Getenv("SYSTEM_THEME") == "dark")
	theme := store.NewTheme("theme", snapshots, preference, store.LogApplier{})

	qr := service.TrackingQRGenerator{BaseURL: cfg.BaseURL}

	handler := httpapi.NewHandler(cat, cart, draft, favorites, orders, theme, qr)
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
