// leaderboard 是多台街机共享的排行榜服务
//
// 环境变量（支持 .env 文件）：
//
//	XRARCADE_REDIS_URL  Redis 地址，为空时使用内存存储
//	LEADERBOARD_PORT    监听端口，默认 8080
//	APP_ENV             production 时启用 gin release 模式
package main

import (
	"log"

	"github.com/decker502/xrarcade/pkg/config"
	"github.com/decker502/xrarcade/pkg/leaderboard"
	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var store leaderboard.Store
	if env.RedisURL != "" {
		client, err := leaderboard.Connect(env.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer client.Close()
		store = leaderboard.NewRedisStore(client)
		log.Printf("[Leaderboard] Using Redis store")
	} else {
		store = leaderboard.NewMemoryStore()
		log.Printf("[Leaderboard] XRARCADE_REDIS_URL not set, scores are kept in memory")
	}

	router := gin.Default()
	leaderboard.SetupRoutes(router, store)

	addr := ":" + env.LeaderboardPort
	log.Printf("[Leaderboard] Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
