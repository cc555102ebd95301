package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/crazy-eights/internal/config"
	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/logger"
	"github.com/palemoky/crazy-eights/internal/sound"
	"github.com/palemoky/crazy-eights/internal/storage"
	"github.com/palemoky/crazy-eights/internal/ui"
	"github.com/palemoky/crazy-eights/internal/ui/model"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	seed := flag.Uint64("seed", 0, "random seed, overrides the config file when non-zero")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
	}
	defer logger.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	opts := model.Options{
		Rand:  card.NewRand(),
		Delay: cfg.Game.ComputerDelayDuration(),
	}
	if cfg.Game.Seed != 0 {
		opts.Rand = card.NewSeededRand(cfg.Game.Seed)
		logger.LogInfo("using seed %d", cfg.Game.Seed)
	}

	if store := connectRedis(cfg.Redis); store != nil {
		defer func() { _ = store.Close() }()
		opts.History = store
	}

	if cfg.Sound.SoundEnabled() {
		sm := sound.NewSoundManager(cfg.Sound.Dir)
		if err := sm.Init(); err != nil {
			logger.LogError("sound disabled: %v", err)
		} else {
			defer sm.Close()
			opts.Sounds = sm
		}
	}

	p := tea.NewProgram(ui.NewGameModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogError("program exited with error: %v", err)
		log.Fatalf("failed to start game: %v", err)
	}
}

// connectRedis 配置了地址且能连通时返回存储，否则不记录对局
func connectRedis(cfg config.RedisConfig) *storage.RedisStore {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	store := storage.NewRedisStore(client, cfg.HistorySize)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		logger.LogError("redis unavailable at %s, results will not be recorded: %v", cfg.Addr, err)
		_ = store.Close()
		return nil
	}

	logger.LogInfo("recording results to redis at %s", cfg.Addr)
	return store
}
